// Package config loads the optional .venvup.yaml tool configuration from a
// project root. Everything has a working default; a missing file is not an
// error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filename is the optional per-project configuration file.
const Filename = ".venvup.yaml"

// Config holds venvup's own settings. The dependency environment itself is
// configured through pyproject.toml, which belongs to uv.
type Config struct {
	// EnvDir overrides the environment directory name (default .venv).
	// Must stay relative to the project root.
	EnvDir string `yaml:"env_dir,omitempty"`
	// Shell forces the activation snippet dialect instead of detecting it.
	Shell string `yaml:"shell,omitempty"`
	// UVArgs are appended to every uv sync invocation.
	UVArgs []string `yaml:"uv_args,omitempty"`
}

// Load reads the config file in dir. A missing file yields the zero Config.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, Filename)) //nolint:gosec // path is inside the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", Filename, err)
	}
	return Parse(data)
}

// Parse parses and validates config content.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", Filename, err)
	}
	if err := validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func validate(c Config) error {
	if c.EnvDir != "" {
		if filepath.IsAbs(c.EnvDir) {
			return fmt.Errorf("%s: env_dir must be relative to the project root: %s", Filename, c.EnvDir)
		}
		cleaned := filepath.Clean(c.EnvDir)
		if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%s: env_dir must not escape the project root: %s", Filename, c.EnvDir)
		}
	}
	return nil
}
