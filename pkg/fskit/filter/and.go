package filter

import (
	"fmt"
	"io/fs"
)

// And combines child filters with conditional AND logic: an item passes
// only when the list is non-empty and every child accepts it, and checking
// stops at the first child that rejects. An empty And matches nothing
// rather than everything, so a composite still being assembled rejects by
// default.
//
// The zero value is an empty composite ready for use. And is not safe for
// concurrent mutation.
type And struct {
	filterList
}

var _ Conditional = (*And)(nil)

// NewAnd combines two filters, evaluated in argument order. Both must be
// non-nil.
func NewAnd(filter1, filter2 Filter) (*And, error) {
	if filter1 == nil || filter2 == nil {
		return nil, fmt.Errorf("and: %w", ErrNilFilter)
	}
	return &And{filterList{filters: []Filter{filter1, filter2}}}, nil
}

// NewAndAll combines one or more filters, evaluated in argument order.
// Only first is checked for nil here; a nil element of more fails when it
// is first evaluated.
func NewAndAll(first Filter, more ...Filter) (*And, error) {
	if first == nil {
		return nil, fmt.Errorf("and: %w", ErrNilFilter)
	}
	filters := make([]Filter, 0, len(more)+1)
	filters = append(filters, first)
	filters = append(filters, more...)
	return &And{filterList{filters: filters}}, nil
}

// AndOf builds a composite from a slice of filters. The slice is copied,
// so later changes to it do not reach the composite. A nil slice yields an
// empty composite.
func AndOf(filters []Filter) *And {
	return &And{filterList{filters: copyOf(filters)}}
}

// Accept reports whether every child accepts path. It returns false for an
// empty composite and stops at the first rejecting child.
func (a *And) Accept(path string) bool {
	if len(a.filters) == 0 {
		return false
	}
	for _, f := range a.filters {
		if !f.Accept(path) {
			return false
		}
	}
	return true
}

// AcceptName reports whether every child accepts the entry name in dir,
// with the same empty-list and short-circuit behavior as Accept.
func (a *And) AcceptName(dir, name string) bool {
	if len(a.filters) == 0 {
		return false
	}
	for _, f := range a.filters {
		if !f.AcceptName(dir, name) {
			return false
		}
	}
	return true
}

// AcceptEntry returns Continue when every child returns Continue, stopping
// at the first child that does not. An empty composite returns Terminate.
// A child error aborts evaluation and is returned unchanged.
func (a *And) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	if len(a.filters) == 0 {
		return Terminate, nil
	}
	for _, f := range a.filters {
		result, err := f.AcceptEntry(path, entry)
		if err != nil {
			return Terminate, err
		}
		if result != Continue {
			return Terminate, nil
		}
	}
	return Continue, nil
}

// String renders the composite as And(child1,child2,...).
func (a *And) String() string {
	return a.render("And")
}
