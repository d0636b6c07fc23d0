package venv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cfg holds the fields venvup reads from pyvenv.cfg. The file is a flat
// "key = value" list written by the venv machinery; there is no section
// structure and no quoting.
type Cfg struct {
	Home           string // directory of the base interpreter
	Implementation string // e.g. CPython
	Version        string // interpreter version, e.g. 3.12.4
	UV             string // version of uv that created the environment, if any
	Prompt         string
}

// ReadCfg parses the environment's pyvenv.cfg.
func (e *Env) ReadCfg() (Cfg, error) {
	path := filepath.Join(e.Dir, "pyvenv.cfg")
	f, err := os.Open(path) //nolint:gosec // path is inside the environment directory
	if err != nil {
		return Cfg{}, fmt.Errorf("reading pyvenv.cfg: %w", err)
	}
	defer func() { _ = f.Close() }()

	var cfg Cfg
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "home":
			cfg.Home = value
		case "implementation":
			cfg.Implementation = value
		case "version", "version_info":
			cfg.Version = value
		case "uv":
			cfg.UV = value
		case "prompt":
			cfg.Prompt = value
		}
	}
	if err := sc.Err(); err != nil {
		return Cfg{}, fmt.Errorf("reading pyvenv.cfg: %w", err)
	}
	return cfg, nil
}
