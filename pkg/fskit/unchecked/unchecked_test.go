package unchecked_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/fskit/pkg/fskit/unchecked"
)

func TestMust(t *testing.T) {
	if got := unchecked.Must(42, nil); got != 42 {
		t.Errorf("Must returned %d, want 42", got)
	}

	wantErr := errors.New("boom")
	defer func() {
		r := recover()
		uerr, ok := r.(*unchecked.Error)
		if !ok {
			t.Fatalf("panic value is %T, want *unchecked.Error", r)
		}
		if !errors.Is(uerr, wantErr) {
			t.Errorf("panic wraps %v, want the original error", uerr)
		}
	}()
	unchecked.Must(0, wantErr)
	t.Fatal("Must did not panic")
}

func TestCheck(t *testing.T) {
	unchecked.Check(nil)

	defer func() {
		if _, ok := recover().(*unchecked.Error); !ok {
			t.Error("Check did not panic with *unchecked.Error")
		}
	}()
	unchecked.Check(errors.New("boom"))
}

func TestGetAndRun(t *testing.T) {
	got := unchecked.Get(func() (string, error) {
		return "value", nil
	})
	if got != "value" {
		t.Errorf("Get returned %q, want value", got)
	}

	ran := false
	unchecked.Run(func() error {
		ran = true
		return nil
	})
	if !ran {
		t.Error("Run did not call the function")
	}
}

func TestCatch(t *testing.T) {
	sentinel := errors.New("original failure")

	t.Run("stores the original error", func(t *testing.T) {
		fail := func() (err error) {
			defer unchecked.Catch(&err)
			unchecked.Check(sentinel)
			return nil
		}
		if got := fail(); !errors.Is(got, sentinel) {
			t.Errorf("got %v, want the original error", got)
		}
	})

	t.Run("leaves the error alone without a panic", func(t *testing.T) {
		ok := func() (err error) {
			defer unchecked.Catch(&err)
			return nil
		}
		if got := ok(); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("re-raises foreign panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r != "not ours" {
				t.Errorf("recovered %v, want the foreign panic value", r)
			}
		}()
		func() (err error) {
			defer unchecked.Catch(&err)
			panic("not ours")
		}()
		t.Fatal("foreign panic was swallowed")
	})
}

func TestError(t *testing.T) {
	inner := errors.New("no such file")
	err := &unchecked.Error{Err: inner}

	if got := err.Error(); got != "unchecked: no such file" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("Error does not unwrap to the original")
	}
}
