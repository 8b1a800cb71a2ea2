package db

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"caesar/internal/rot"
)

func open(t *testing.T) {
	t.Helper()
	Open(Config{File: filepath.Join(t.TempDir(), "data", "caesar.db")})
	t.Cleanup(func() {
		if err := Close(); err != nil {
			t.Error(err)
		}
	})
}

func TestProfiles(t *testing.T) {
	open(t)

	rot13 := Profile{Low: 'a', High: 'z', Shift: 13}
	if err := SetProfile("rot13", rot13); err != nil {
		t.Fatal(err)
	}

	p, ok, err := GetProfile("rot13")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("profile rot13 not found")
	}
	if have, want := p.Shift, 13; have != want {
		t.Fatalf("Shift = %d, want %d", have, want)
	}
	if p.Created.IsZero() {
		t.Fatal("Created not set")
	}

	c, err := p.Cipher()
	if err != nil {
		t.Fatal(err)
	}
	if have, want := c.EncodeString("hello"), "uryyb"; have != want {
		t.Fatalf("Encode = %q, want %q", have, want)
	}

	created := p.Created
	time.Sleep(time.Millisecond)
	if err := SetProfile("rot13", Profile{Low: 'a', High: 'z', Shift: -13}); err != nil {
		t.Fatal(err)
	}
	p, _, err = GetProfile("rot13")
	if err != nil {
		t.Fatal(err)
	}
	if have, want := p.Created, created; !have.Equal(want) {
		t.Fatalf("Created changed from %s to %s", want, have)
	}
	if have, want := p.Shift, -13; have != want {
		t.Fatalf("Shift = %d, want %d", have, want)
	}

	existed, err := DeleteProfile("rot13")
	if err != nil {
		t.Fatal(err)
	}
	if !existed {
		t.Fatal("DeleteProfile reported missing profile")
	}

	existed, err = DeleteProfile("rot13")
	if err != nil {
		t.Fatal(err)
	}
	if existed {
		t.Fatal("DeleteProfile reported deleted profile")
	}

	if _, ok, err := GetProfile("rot13"); err != nil || ok {
		t.Fatalf("GetProfile after delete = %v, %v", ok, err)
	}
}

func TestSetProfileInvalid(t *testing.T) {
	open(t)

	err := SetProfile("bad name!", Profile{Low: 'a', High: 'z'})
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("SetProfile error = %v, want %v", err, ErrInvalidName)
	}

	err = SetProfile("inverted", Profile{Low: 'z', High: 'a'})
	if !errors.Is(err, rot.ErrInvalidRange) {
		t.Fatalf("SetProfile error = %v, want %v", err, rot.ErrInvalidRange)
	}

	for name := range All() {
		t.Fatalf("invalid profile %q was stored", name)
	}
}

func TestAll(t *testing.T) {
	open(t)

	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for name, shift := range want {
		if err := SetProfile(name, Profile{Low: ' ', High: '~', Shift: shift}); err != nil {
			t.Fatal(err)
		}
	}

	have := map[string]int{}
	for name, p := range All() {
		have[name] = p.Shift
	}
	if len(have) != len(want) {
		t.Fatalf("All = %v, want %v", have, want)
	}
	for name, shift := range want {
		if have[name] != shift {
			t.Fatalf("All = %v, want %v", have, want)
		}
	}

	n := 0
	for range All() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("early break iterated %d profiles", n)
	}
}

func TestValidName(t *testing.T) {
	for name, want := range map[string]bool{
		"rot13":                 true,
		"my-profile_2":          true,
		"":                      false,
		"with space":            false,
		"ünicode":               false,
		strings.Repeat("a", 30): true,
		strings.Repeat("a", 31): false,
	} {
		if have := ValidName(name); have != want {
			t.Errorf("ValidName(%q) = %v, want %v", name, have, want)
		}
	}
}
