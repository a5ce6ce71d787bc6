package filter

import (
	"fmt"
	"strings"
)

// Conditional is implemented by composite filters that combine an ordered
// list of child filters, such as And and Or.
type Conditional interface {
	Filter

	// Add appends a child to the end of the list.
	Add(Filter)

	// Remove deletes the first child equal to filter and reports whether
	// one was found.
	Remove(filter Filter) bool

	// Filters returns a copy of the child list in evaluation order.
	Filters() []Filter

	// SetFilters replaces the child list with a copy of filters.
	SetFilters(filters []Filter)
}

// filterList holds the ordered children shared by the conditional
// composites. The zero value is an empty list.
type filterList struct {
	filters []Filter
}

// Add appends filter to the end of the list. Nil values and duplicates are
// allowed; a nil child fails when it is first evaluated, not here.
func (l *filterList) Add(filter Filter) {
	l.filters = append(l.filters, filter)
}

// Remove deletes the first child equal to filter and reports whether one
// was found. Later equal children stay in place.
func (l *filterList) Remove(filter Filter) bool {
	for i, f := range l.filters {
		if f == filter {
			l.filters = append(l.filters[:i], l.filters[i+1:]...)
			return true
		}
	}
	return false
}

// Filters returns a copy of the child list in evaluation order. Mutating
// the returned slice does not affect the composite.
func (l *filterList) Filters() []Filter {
	out := make([]Filter, len(l.filters))
	copy(out, l.filters)
	return out
}

// SetFilters replaces the child list with a copy of filters. A nil slice
// clears the list.
func (l *filterList) SetFilters(filters []Filter) {
	l.filters = make([]Filter, len(filters))
	copy(l.filters, filters)
}

// render formats the list as name(child1,child2,...). Nil children render
// as the literal null so a broken composite is visible in logs.
func (l *filterList) render(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, f := range l.filters {
		if i > 0 {
			b.WriteByte(',')
		}
		if f == nil {
			b.WriteString("null")
		} else {
			fmt.Fprintf(&b, "%v", f)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// copyOf returns filters copied into a fresh slice, empty for nil input.
func copyOf(filters []Filter) []Filter {
	if len(filters) == 0 {
		return nil
	}
	out := make([]Filter, len(filters))
	copy(out, filters)
	return out
}
