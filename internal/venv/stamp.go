package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// stampName is the file inside the environment directory recording the hash
// of the lockfile the environment was last synced against.
const stampName = ".venvup.stamp"

// HashFile returns the xxhash64 digest of a file's contents as a hex string.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a project file
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", filepath.Base(path), err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// WriteStamp records the given digest in the environment directory. It is
// called only after a successful sync, so a torn sync never looks fresh.
func (e *Env) WriteStamp(digest string) error {
	path := filepath.Join(e.Dir, stampName)
	if err := os.WriteFile(path, []byte(digest+"\n"), 0644); err != nil { //nolint:gosec // stamp is not sensitive
		return fmt.Errorf("writing sync stamp: %w", err)
	}
	return nil
}

// ReadStamp returns the recorded digest, if any.
func (e *Env) ReadStamp() (string, bool) {
	data, err := os.ReadFile(filepath.Join(e.Dir, stampName)) //nolint:gosec // path is inside the environment directory
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// Freshness describes how the environment relates to the lockfile.
type Freshness string

const (
	Fresh   Freshness = "fresh"   // stamp matches the current lockfile
	Stale   Freshness = "stale"   // lockfile changed since the last sync
	Unknown Freshness = "unknown" // no stamp recorded (synced by uv directly, or never)
)

// FreshnessAgainst compares the recorded stamp with the current lockfile.
func (e *Env) FreshnessAgainst(lockPath string) Freshness {
	recorded, ok := e.ReadStamp()
	if !ok {
		return Unknown
	}
	current, err := HashFile(lockPath)
	if err != nil {
		return Unknown
	}
	if recorded == current {
		return Fresh
	}
	return Stale
}
