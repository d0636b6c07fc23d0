package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeUVScript imitates the slice of uv's behavior venvup depends on: sync
// writes a minimal uv.lock when none exists, creates the environment
// directory with an activation script and pyvenv.cfg, and reconciles one
// marker directory per locked package under lib/, removing markers for
// packages no longer in the lock; lock writes a minimal uv.lock.
// It honors UV_PROJECT_ENVIRONMENT the way uv does. Set FAKE_UV_FAIL to make
// sync exit non-zero, and FAKE_UV_LOG to a file path to record invocations.
const fakeUVScript = `#!/bin/sh
[ -n "$FAKE_UV_LOG" ] && echo "$@" >> "$FAKE_UV_LOG"
case "$1" in
--version)
    echo "uv 0.5.99 (fake)"
    exit 0
    ;;
lock)
    shift
    if [ ! -f pyproject.toml ]; then
        echo 'error: No pyproject.toml found in current directory' >&2
        exit 2
    fi
    for a in "$@"; do
        if [ "$a" = "--check" ]; then
            [ -f uv.lock ] || exit 1
            exit 0
        fi
    done
    [ -f uv.lock ] || printf 'version = 1\nrequires-python = ">=3.12"\n' > uv.lock
    exit 0
    ;;
sync)
    ;;
*)
    echo "fake uv: unsupported command: $*" >&2
    exit 2
    ;;
esac
if [ -n "$FAKE_UV_FAIL" ]; then
    echo "error: failed to resolve dependencies (fake)" >&2
    exit 1
fi
if [ ! -f pyproject.toml ]; then
    echo 'error: No pyproject.toml found in current directory' >&2
    exit 2
fi
[ -f uv.lock ] || printf 'version = 1\nrequires-python = ">=3.12"\n' > uv.lock
ENVDIR="${UV_PROJECT_ENVIRONMENT:-.venv}"
mkdir -p "$ENVDIR/bin" "$ENVDIR/lib"
{
    echo "home = /usr/bin"
    echo "implementation = CPython"
    echo "version_info = 3.12.4"
    echo "uv = 0.5.99"
} > "$ENVDIR/pyvenv.cfg"
printf '# fake activation script\n' > "$ENVDIR/bin/activate"
printf '#!/bin/sh\nexec python3 "$@"\n' > "$ENVDIR/bin/python"
chmod +x "$ENVDIR/bin/python"
for d in "$ENVDIR"/lib/*; do
    [ -e "$d" ] && rm -rf "$d"
done
if [ -f uv.lock ]; then
    grep '^name = ' uv.lock | sed 's/^name = "\(.*\)"$/\1/' | while read -r name; do
        mkdir -p "$ENVDIR/lib/$name"
    done
fi
exit 0
`

// InstallFakeUV places a fake uv executable at the front of PATH for the
// duration of the test.
func InstallFakeUV(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "uv")
	if err := os.WriteFile(path, []byte(fakeUVScript), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("FAKE_UV_FAIL", "")
	t.Setenv("FAKE_UV_LOG", "")
}

// UVCallLog redirects fake uv invocation logging to a temp file and returns
// a function that reads the recorded invocations.
func UVCallLog(t *testing.T) func() []string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uv.log")
	t.Setenv("FAKE_UV_LOG", path)
	return func() []string {
		data, err := os.ReadFile(path) //nolint:gosec // test log file
		if err != nil {
			return nil
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) == 1 && lines[0] == "" {
			return nil
		}
		return lines
	}
}

// WriteProject writes a pyproject.toml and uv.lock into dir declaring the
// given packages. Returns the project dir for convenience.
func WriteProject(t *testing.T, dir string, packages ...string) string {
	t.Helper()
	WriteManifest(t, dir, packages...)
	WriteLock(t, dir, packages...)
	return dir
}

// WriteManifest writes a minimal pyproject.toml declaring the given packages.
func WriteManifest(t *testing.T, dir string, packages ...string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("[project]\nname = \"testproj\"\nversion = \"0.1.0\"\nrequires-python = \">=3.12\"\ndependencies = [\n")
	for _, p := range packages {
		fmt.Fprintf(&b, "    %q,\n", p)
	}
	b.WriteString("]\n")
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
}

// WriteConfig writes a .venvup.yaml with the given content.
func WriteConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ".venvup.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// WriteLock writes a minimal uv.lock resolving the given packages.
func WriteLock(t *testing.T, dir string, packages ...string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("version = 1\nrequires-python = \">=3.12\"\n")
	for _, p := range packages {
		fmt.Fprintf(&b, "\n[[package]]\nname = %q\nversion = \"1.0.0\"\nsource = { registry = \"https://pypi.org/simple\" }\n", p)
	}
	if err := os.WriteFile(filepath.Join(dir, "uv.lock"), []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
}
