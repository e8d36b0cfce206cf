package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Sources lists where a configuration comes from, lowest precedence first:
// defaults, File, EnvFile, Lookup, then Overrides.
type Sources struct {
	// File is an optional YAML file.
	File string

	// EnvFile is an optional dotenv file. A missing file is not an error.
	EnvFile string

	// Lookup reads the process environment; os.LookupEnv in production.
	Lookup func(string) (string, bool)

	// Overrides applies explicitly set command-line flags.
	Overrides func(*Config)
}

// Resolve layers every source onto [Default] and validates the result.
func Resolve(src Sources) (*Config, error) {
	cfg, err := Load(src.File)
	if err != nil {
		return nil, err
	}

	dotenv := map[string]string{}
	if src.EnvFile != "" {
		dotenv, err = godotenv.Read(src.EnvFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %q: %w", src.EnvFile, err)
		}
	}

	lookup := src.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	layered := func(k string) (string, bool) {
		if v, ok := lookup(k); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[k]
		return v, ok
	}
	if err := ApplyEnv(cfg, layered); err != nil {
		return nil, err
	}

	if src.Overrides != nil {
		src.Overrides(cfg)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
