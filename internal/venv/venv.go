package venv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDir is the conventional environment directory name uv creates in a
// project root.
const DefaultDir = ".venv"

// ErrActivateMissing is returned when the environment directory exists but
// contains no activation script, meaning a sync never completed or the
// directory has an unexpected layout.
var ErrActivateMissing = errors.New("activation script not found")

// Env is a virtual environment rooted at a directory.
type Env struct {
	Dir string
}

// New returns an Env for the given directory. The directory does not need
// to exist yet.
func New(dir string) *Env {
	return &Env{Dir: dir}
}

// Exists reports whether the environment directory is present.
func (e *Env) Exists() bool {
	info, err := os.Stat(e.Dir)
	return err == nil && info.IsDir()
}

// BinDir returns the directory holding the environment's executables
// ("bin" in a POSIX layout, "Scripts" on Windows).
func (e *Env) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Dir, "Scripts")
	}
	return filepath.Join(e.Dir, "bin")
}

// Python returns the path where the environment's interpreter is expected.
func (e *Env) Python() string {
	name := "python"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(e.BinDir(), name)
}

// ActivateScript returns the path of the activation script, verifying it
// exists. A missing script surfaces as ErrActivateMissing.
func (e *Env) ActivateScript() (string, error) {
	path := filepath.Join(e.BinDir(), "activate")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w in %s", ErrActivateMissing, e.Dir)
	}
	return path, nil
}

// Synced reports whether the environment looks complete: the directory
// exists and contains an activation script.
func (e *Env) Synced() bool {
	if !e.Exists() {
		return false
	}
	_, err := e.ActivateScript()
	return err == nil
}
