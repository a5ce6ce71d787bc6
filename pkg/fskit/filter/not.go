package filter

import (
	"fmt"
	"io/fs"
)

type notFilter struct {
	filter Filter
}

var _ Filter = (*notFilter)(nil)

// NewNot inverts filter: items it rejects pass and items it accepts do
// not. The filter must be non-nil.
func NewNot(filter Filter) (Filter, error) {
	if filter == nil {
		return nil, fmt.Errorf("not: %w", ErrNilFilter)
	}
	return &notFilter{filter: filter}, nil
}

func (n *notFilter) Accept(path string) bool {
	return !n.filter.Accept(path)
}

func (n *notFilter) AcceptName(dir, name string) bool {
	return !n.filter.AcceptName(dir, name)
}

// AcceptEntry inverts the wrapped verdict: Continue becomes Terminate and
// any rejection becomes Continue. Errors pass through unchanged.
func (n *notFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	result, err := n.filter.AcceptEntry(path, entry)
	if err != nil {
		return Terminate, err
	}
	if result == Continue {
		return Terminate, nil
	}
	return Continue, nil
}

func (n *notFilter) String() string {
	return fmt.Sprintf("Not(%v)", n.filter)
}
