package lock

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Filename is the conventional lockfile name uv writes next to the manifest.
const Filename = "uv.lock"

// Load reads a uv.lock file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project lockfile path
	if err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	return Parse(data)
}

// Parse parses uv.lock content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing lock TOML: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported lock file version: %d (expected 1)", f.Version)
	}
	return &f, nil
}
