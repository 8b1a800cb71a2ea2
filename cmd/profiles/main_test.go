package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"caesar/internal/config"
	"caesar/internal/db"
	"caesar/internal/rot"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	c := config.Config{DB: db.Config{File: filepath.Join(t.TempDir(), "caesar.db")}}

	if err := run(ctx, &bytes.Buffer{}, c, []string{"set", "rot13", "a", "z", "13"}); err != nil {
		t.Fatal(err)
	}
	if err := run(ctx, &bytes.Buffer{}, c, []string{"set", "upper", "A", "U+005A", "-1"}); err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	if err := run(ctx, out, c, []string{"list"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if have, want := len(lines), 2; have != want {
		t.Fatalf("list printed %d lines, want %d: %q", have, want, out)
	}
	if !strings.HasPrefix(lines[0], "rot13\t'a'\t'z'\t13\t") {
		t.Fatalf("unexpected line %q", lines[0])
	}

	if err := run(ctx, &bytes.Buffer{}, c, []string{"rm", "rot13"}); err != nil {
		t.Fatal(err)
	}
	if err := run(ctx, &bytes.Buffer{}, c, []string{"rm", "rot13"}); err == nil {
		t.Fatal("removing a missing profile succeeded")
	}
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	c := config.Config{DB: db.Config{File: filepath.Join(t.TempDir(), "caesar.db")}}

	for _, args := range [][]string{
		nil,
		{"frobnicate"},
		{"list", "extra"},
		{"set", "x"},
		{"rm"},
	} {
		if err := run(ctx, &bytes.Buffer{}, c, args); !errors.Is(err, errUsage) {
			t.Errorf("run(%q) error = %v, want %v", args, err, errUsage)
		}
	}

	if err := run(ctx, &bytes.Buffer{}, c, []string{"set", "bad", "z", "a", "1"}); !errors.Is(err, rot.ErrInvalidRange) {
		t.Errorf("inverted range error = %v, want %v", err, rot.ErrInvalidRange)
	}
	if err := run(ctx, &bytes.Buffer{}, c, []string{"set", "bad", "a", "z", "one"}); err == nil {
		t.Error("non numeric shift accepted")
	}
}
