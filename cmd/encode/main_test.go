package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(context.Background(), []string{"1", "A z", "Hello", ""}, out)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := out.String(), "B {\nIfmmp\n\n"; have != want {
		t.Fatalf("output %q, want %q", have, want)
	}
}

func TestRunNegativeShift(t *testing.T) {
	out := &bytes.Buffer{}

	if err := run(context.Background(), []string{"-1", " "}, out); err != nil {
		t.Fatal(err)
	}
	if have, want := out.String(), "~\n"; have != want {
		t.Fatalf("output %q, want %q", have, want)
	}
}

func TestRunInvalidShift(t *testing.T) {
	for _, shift := range []string{"three", "", "1.5", " 1", "99999999999999999999999"} {
		out := &bytes.Buffer{}

		err := run(context.Background(), []string{shift, "text"}, out)
		if !errors.Is(err, errShift) {
			t.Fatalf("shift %q: error = %v, want %v", shift, err, errShift)
		}
		if out.Len() != 0 {
			t.Fatalf("shift %q: text was encoded anyway: %q", shift, out)
		}
	}
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"3"}} {
		if err := run(context.Background(), args, &bytes.Buffer{}); !errors.Is(err, errUsage) {
			t.Fatalf("run(%q) error = %v, want %v", args, err, errUsage)
		}
	}
}
