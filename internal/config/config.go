// Package config loads the YAML configuration shared by the caesar commands.
package config

import (
	"context"
	"fmt"
	"os"

	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"caesar/internal/rot"
	"caesar/internal/server"

	"github.com/goccy/go-yaml"
)

// Bounds are the alphabet bounds as written in the config file.
// Characters that YAML would not read as strings, such as "~" or digits, must be quoted.
type Bounds struct {
	Low  rot.Char `yaml:"low"`
	High rot.Char `yaml:"high"`
}

// Config is the file shared by all commands.
// Shift is used when a request or prompt gives none; when unset a shift is always required.
type Config struct {
	LogDir string        `yaml:"logDir"`
	Bounds *Bounds       `yaml:"alphabet"`
	Shift  *int          `yaml:"shift"`
	DB     db.Config     `yaml:"db"`
	Server server.Config `yaml:"server"`
}

// Alphabet returns the configured alphabet, or rot.Printable if none is set.
func (c Config) Alphabet() rot.Alphabet {
	if c.Bounds == nil {
		return rot.Printable
	}
	return rot.Alphabet{Low: rune(c.Bounds.Low), High: rune(c.Bounds.High)}
}

func (c Config) Defaults() server.Defaults {
	return server.Defaults{Alphabet: c.Alphabet(), Shift: c.Shift}
}

func Load(ctx context.Context, filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	var config Config
	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	if err := config.Alphabet().Validate(); err != nil {
		return Config{}, fmt.Errorf("alphabet: %w", err)
	}

	return config, nil
}
