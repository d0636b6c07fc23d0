package shell

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Dialect selects the syntax of emitted activation instructions.
type Dialect string

const (
	Posix      Dialect = "posix" // bash, zsh, dash, sh
	Fish       Dialect = "fish"
	Powershell Dialect = "powershell"
)

// Parse parses a dialect name, defaulting to the detected dialect for "".
func Parse(s string, environ []string) (Dialect, error) {
	switch Dialect(s) {
	case Posix, Fish, Powershell:
		return Dialect(s), nil
	case "":
		return Detect(environ), nil
	default:
		return "", fmt.Errorf("unknown shell %q (must be posix, fish, or powershell)", s)
	}
}

// Detect guesses the caller's shell dialect from $SHELL, falling back to
// posix (powershell on Windows).
func Detect(environ []string) Dialect {
	name := filepath.Base(lookup(environ, "SHELL"))
	switch {
	case strings.Contains(name, "fish"):
		return Fish
	case strings.Contains(name, "pwsh"), strings.Contains(name, "powershell"):
		return Powershell
	}
	if runtime.GOOS == "windows" {
		return Powershell
	}
	return Posix
}

func lookup(environ []string, key string) string {
	prefix := key + "="
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):]
		}
	}
	return ""
}
