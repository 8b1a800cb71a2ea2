package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"caesar/internal/rot"
	"caesar/internal/rotate"

	"go.etcd.io/bbolt"
)

var ErrInvalidName = errors.New("db: invalid profile name")

// Profile is a named cipher configuration.
type Profile struct {
	Low     rot.Char  `json:"low"`
	High    rot.Char  `json:"high"`
	Shift   int       `json:"shift"`
	Created time.Time `json:"created"`
}

func (p Profile) Cipher() (rotate.Cipher, error) {
	return rotate.New(rune(p.Low), rune(p.High), p.Shift)
}

func ValidName(name string) bool {
	if len(name) == 0 || len(name) > 30 {
		return false
	}

	if strings.ContainsFunc(name, func(c rune) bool {
		return c != '_' && c != '-' && (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9')
	}) {
		return false
	}

	return true
}

// SetProfile stores p under name, keeping the creation time of an existing profile.
func SetProfile(name string, p Profile) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, err := p.Cipher(); err != nil {
		return fmt.Errorf("db: profile %q: %w", name, err)
	}

	return modify(name, func(old *Profile, exists bool) (*Profile, error) {
		if exists && !old.Created.IsZero() {
			p.Created = old.Created
		} else if p.Created.IsZero() {
			p.Created = time.Now()
		}
		return &p, nil
	})
}

// DeleteProfile removes name and reports whether it existed.
func DeleteProfile(name string) (bool, error) {
	var existed bool
	err := modify(name, func(_ *Profile, exists bool) (*Profile, error) {
		existed = exists
		return nil, nil
	})
	return existed, err
}

func GetProfile(name string) (Profile, bool, error) {
	if db == nil {
		panic("db: not opened")
	}

	var (
		profile Profile
		found   bool
	)
	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketProfiles)
		if b == nil {
			return fmt.Errorf("db: profiles bucket not found")
		}

		data := b.Get([]byte(name))
		if data == nil {
			return nil
		}
		found = true
		if err := json.Unmarshal(data, &profile); err != nil {
			return fmt.Errorf("db: unmarshal profile %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return Profile{}, false, err
	}
	return profile, found, nil
}
