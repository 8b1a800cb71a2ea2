package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(context.Background(), []string{"1", "B {", "Ifmmp\n"}, out)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := out.String(), "A z\nHello\n\n"; have != want {
		t.Fatalf("output %q, want %q", have, want)
	}
}

func TestRunInvalidShift(t *testing.T) {
	for _, shift := range []string{"three", "", "0x10", "99999999999999999999999"} {
		out := &bytes.Buffer{}

		err := run(context.Background(), []string{shift, "text"}, out)
		if !errors.Is(err, errShift) {
			t.Fatalf("shift %q: error = %v, want %v", shift, err, errShift)
		}
		if out.Len() != 0 {
			t.Fatalf("shift %q: text was decoded anyway: %q", shift, out)
		}
	}
}

func TestRunUsage(t *testing.T) {
	if err := run(context.Background(), []string{"3"}, &bytes.Buffer{}); !errors.Is(err, errUsage) {
		t.Fatalf("error = %v, want %v", err, errUsage)
	}
}
