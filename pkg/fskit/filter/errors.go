package filter

import "errors"

// ErrNilFilter reports a nil filter passed to a constructor that requires
// all of its arguments up front.
var ErrNilFilter = errors.New("filter must not be nil")
