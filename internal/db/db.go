// Package db provides functions for managing named cipher profiles using a BoltDB backend.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketProfiles = []byte("profiles")
)

type Config struct {
	File string `yaml:"file"`
}

var db *bbolt.DB

func Open(config Config) {
	if db != nil {
		panic("db: already opened")
	}
	if config.File == "" {
		panic("db: file is required")
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("db: create db dir: %w", err))
	}

	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		panic(fmt.Errorf("db: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{
			bucketProfiles,
		} {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return fmt.Errorf("create bucket %q: %w", bucket, err)
			}
		}

		return nil
	})
	if err != nil {
		db.Close()
		db = nil
		panic(fmt.Errorf("db: initialize buckets: %w", err))
	}
}

func Close() error {
	if db == nil {
		panic("db: not opened")
	}

	err := db.Close()
	if err != nil {
		return fmt.Errorf("db: close bbolt db: %w", err)
	}
	db = nil
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("db: must: %w", err))
	}
	return v
}

func modify(name string, modify func(*Profile, bool) (*Profile, error)) error {
	if db == nil {
		panic("db: not opened")
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketProfiles)
		if b == nil {
			return fmt.Errorf("db: profiles bucket not found")
		}

		var profile *Profile
		exists := false

		data := b.Get([]byte(name))
		if data == nil {
			profile = &Profile{}
		} else {
			err := json.Unmarshal(data, &profile)
			if err != nil {
				return fmt.Errorf("db: unmarshal profile %q: %w", name, err)
			}
			exists = true
		}

		var err error
		if profile, err = modify(profile, exists); err != nil {
			return fmt.Errorf("db: modify profile %q: %w", name, err)
		}

		if profile == nil {
			if !exists {
				return nil
			}
			return b.Delete([]byte(name))
		}
		return b.Put([]byte(name), must(json.Marshal(profile)))
	})
}

var errStop = fmt.Errorf("stop iteration")

func All() iter.Seq2[string, Profile] {
	if db == nil {
		panic("db: not opened")
	}

	return func(yield func(string, Profile) bool) {
		err := db.View(func(tx *bbolt.Tx) error {
			b := tx.Bucket(bucketProfiles)
			if b == nil {
				return fmt.Errorf("db: profiles bucket not found")
			}

			return b.ForEach(func(k, v []byte) error {
				var profile Profile
				err := json.Unmarshal(v, &profile)
				if err != nil {
					return fmt.Errorf("db: unmarshal profile %q: %w", k, err)
				}

				if !yield(string(k), profile) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: get all profiles: %w", err))
		}
	}
}
