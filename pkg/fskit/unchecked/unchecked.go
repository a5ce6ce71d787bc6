// Package unchecked converts error-returning filesystem calls into calls
// that panic, for use in contexts where an error return is unavailable or
// unwanted, such as initialization code, tests and short scripts.
//
// Panics raised here always carry an *Error wrapping the original error,
// so a caller can convert them back into plain error returns with a
// deferred Catch:
//
//	func load(name string) (data []byte, err error) {
//		defer unchecked.Catch(&err)
//		return unchecked.ReadFile(name), nil
//	}
//
// Panics from any other source pass through Catch untouched.
package unchecked

// Error wraps the error behind a panic raised by this package.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "unchecked: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Check panics with an *Error when err is non-nil.
func Check(err error) {
	if err != nil {
		panic(&Error{Err: err})
	}
}

// Must returns v when err is nil and panics with an *Error otherwise. It
// lifts any two-value call into an expression:
//
//	f := unchecked.Must(os.Open(name))
func Must[T any](v T, err error) T {
	Check(err)
	return v
}

// Get calls fn and returns its result, panicking when fn fails.
func Get[T any](fn func() (T, error)) T {
	return Must(fn())
}

// Run calls fn and panics when it fails.
func Run(fn func() error) {
	Check(fn())
}

// Catch recovers a panic raised by this package and stores the original
// error through errp. Use it deferred on a named error return. When no
// panic is in flight errp is left alone, and panics from other sources are
// re-raised.
func Catch(errp *error) {
	switch r := recover().(type) {
	case nil:
	case *Error:
		*errp = r.Err
	default:
		panic(r)
	}
}
