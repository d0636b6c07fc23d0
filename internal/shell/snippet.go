package shell

import (
	"fmt"
	"os"
	"strings"
)

// Snippet returns shell code that activates the environment rooted at envDir
// when evaluated by the caller's own shell process: it exports VIRTUAL_ENV,
// prepends binDir to the executable search path, and unsets PYTHONHOME so
// the base interpreter cannot leak in. Evaluating the snippet is the single
// Inactive -> Active transition for the session. Paths are single-quoted so
// $, backticks and backslashes in a project path survive the eval verbatim.
func Snippet(d Dialect, envDir, binDir string) string {
	switch d {
	case Fish:
		return fmt.Sprintf(`set -gx VIRTUAL_ENV %s
set -gx PATH %s $PATH
set -e PYTHONHOME
`, fishQuote(envDir), fishQuote(binDir))
	case Powershell:
		return fmt.Sprintf(`$env:VIRTUAL_ENV = %s
$env:PATH = %s + [IO.Path]::PathSeparator + $env:PATH
Remove-Item Env:PYTHONHOME -ErrorAction SilentlyContinue
`, psQuote(envDir), psQuote(binDir))
	default:
		return fmt.Sprintf(`VIRTUAL_ENV=%s
export VIRTUAL_ENV
PATH=%s:"$PATH"
export PATH
unset PYTHONHOME
hash -r 2>/dev/null || true
`, posixQuote(envDir), posixQuote(binDir))
	}
}

// posixQuote single-quotes s for POSIX shells. Nothing expands inside single
// quotes; an embedded quote is closed, escaped, and reopened.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote single-quotes s for fish, where backslash and quote keep their
// escape meaning inside single quotes.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return "'" + s + "'"
}

// psQuote single-quotes s for PowerShell, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Environ returns a copy of base with the same mutation Snippet describes
// applied in-process: VIRTUAL_ENV set, binDir prepended to PATH, PYTHONHOME
// dropped. base is typically os.Environ(); it is not modified.
func Environ(base []string, envDir, binDir string) []string {
	out := make([]string, 0, len(base)+2)
	pathSeen := false
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		switch key {
		case "VIRTUAL_ENV", "PYTHONHOME":
			continue
		case "PATH":
			pathSeen = true
			kv = "PATH=" + binDir + string(os.PathListSeparator) + kv[len("PATH="):]
		}
		out = append(out, kv)
	}
	if !pathSeen {
		out = append(out, "PATH="+binDir)
	}
	out = append(out, "VIRTUAL_ENV="+envDir)
	return out
}
