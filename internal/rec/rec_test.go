package rec

import (
	"errors"
	"strings"
	"testing"

	"caesar/internal/rot"
)

func TestError(t *testing.T) {
	err := func() (err error) {
		defer Error(&err)
		panic(rot.ErrInvalidRange)
	}()

	if !errors.Is(err, rot.ErrInvalidRange) {
		t.Fatalf("Error = %v, want wrapped %v", err, rot.ErrInvalidRange)
	}
}

func TestErrorValue(t *testing.T) {
	err := func() (err error) {
		defer Error(&err)
		panic("db: not opened")
	}()

	if err == nil || !strings.Contains(err.Error(), "db: not opened") {
		t.Fatalf("Error = %v", err)
	}
}

func TestErrorNoPanic(t *testing.T) {
	want := errors.New("plain")
	err := func() (err error) {
		defer Error(&err)
		return want
	}()

	if have := err; have != want {
		t.Fatalf("Error = %v, want %v", have, want)
	}
}

func TestWrap(t *testing.T) {
	err := func() (err error) {
		defer Wrap(&err, "profile %q: %w", "rot13")
		return rot.ErrInvalidRange
	}()

	if !errors.Is(err, rot.ErrInvalidRange) || !strings.HasPrefix(err.Error(), `profile "rot13": `) {
		t.Fatalf("Wrap = %v", err)
	}

	err = func() (err error) {
		defer Wrap(&err, "profile %q: %w", "rot13")
		panic(rot.ErrInvalidRange)
	}()

	if !errors.Is(err, rot.ErrInvalidRange) {
		t.Fatalf("Wrap after panic = %v", err)
	}
}
