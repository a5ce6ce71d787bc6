package filter

import (
	"fmt"
	"io/fs"
)

// Or combines child filters with conditional OR logic: an item passes when
// any child accepts it, and checking stops at the first child that does.
// An empty Or matches nothing.
//
// The zero value is an empty composite ready for use. Or is not safe for
// concurrent mutation.
type Or struct {
	filterList
}

var _ Conditional = (*Or)(nil)

// NewOr combines two filters, evaluated in argument order. Both must be
// non-nil.
func NewOr(filter1, filter2 Filter) (*Or, error) {
	if filter1 == nil || filter2 == nil {
		return nil, fmt.Errorf("or: %w", ErrNilFilter)
	}
	return &Or{filterList{filters: []Filter{filter1, filter2}}}, nil
}

// NewOrAll combines one or more filters, evaluated in argument order. Only
// first is checked for nil here; a nil element of more fails when it is
// first evaluated.
func NewOrAll(first Filter, more ...Filter) (*Or, error) {
	if first == nil {
		return nil, fmt.Errorf("or: %w", ErrNilFilter)
	}
	filters := make([]Filter, 0, len(more)+1)
	filters = append(filters, first)
	filters = append(filters, more...)
	return &Or{filterList{filters: filters}}, nil
}

// OrOf builds a composite from a slice of filters. The slice is copied, so
// later changes to it do not reach the composite. A nil slice yields an
// empty composite.
func OrOf(filters []Filter) *Or {
	return &Or{filterList{filters: copyOf(filters)}}
}

// Accept reports whether any child accepts path. It returns false for an
// empty composite and stops at the first accepting child.
func (o *Or) Accept(path string) bool {
	for _, f := range o.filters {
		if f.Accept(path) {
			return true
		}
	}
	return false
}

// AcceptName reports whether any child accepts the entry name in dir, with
// the same empty-list and short-circuit behavior as Accept.
func (o *Or) AcceptName(dir, name string) bool {
	for _, f := range o.filters {
		if f.AcceptName(dir, name) {
			return true
		}
	}
	return false
}

// AcceptEntry returns Continue at the first child that returns Continue
// and Terminate when none does, including for an empty composite. A child
// error aborts evaluation and is returned unchanged.
func (o *Or) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	for _, f := range o.filters {
		result, err := f.AcceptEntry(path, entry)
		if err != nil {
			return Terminate, err
		}
		if result == Continue {
			return Continue, nil
		}
	}
	return Terminate, nil
}

// String renders the composite as Or(child1,child2,...).
func (o *Or) String() string {
	return o.render("Or")
}
