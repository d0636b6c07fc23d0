package uv

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrSyncFailed is returned when uv sync exits non-zero: unsatisfiable or
// unreachable dependencies, an out-of-date lockfile under --locked, and so
// on. uv's stderr carries the details; venvup adds no translation.
var ErrSyncFailed = errors.New("uv sync failed")

// SyncOpts configures a uv sync invocation.
type SyncOpts struct {
	// Frozen installs from the lockfile as-is, failing if it is missing.
	Frozen bool
	// Locked asserts the lockfile is up to date with the manifest.
	Locked bool
	// NoDev omits the dev dependency group.
	NoDev bool
	// EnvDir overrides the environment directory uv targets (default .venv).
	EnvDir string
	// ExtraArgs are appended verbatim, for settings venvup has no opinion on.
	ExtraArgs []string
}

// Sync reconciles the project's environment directory with its lockfile,
// creating the environment if absent. projectDir becomes uv's working
// directory so manifest discovery matches running uv there by hand.
func Sync(projectDir string, opts SyncOpts) error {
	args := []string{"sync"}
	if opts.Frozen {
		args = append(args, "--frozen")
	}
	if opts.Locked {
		args = append(args, "--locked")
	}
	if opts.NoDev {
		args = append(args, "--no-dev")
	}
	args = append(args, opts.ExtraArgs...)

	cmd := exec.Command("uv", args...) //nolint:gosec // args are built from known flags and project config
	cmd.Dir = projectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.EnvDir != "" {
		cmd.Env = append(os.Environ(), "UV_PROJECT_ENVIRONMENT="+opts.EnvDir)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	return nil
}

// ErrLockFailed is returned when uv lock exits non-zero.
var ErrLockFailed = errors.New("uv lock failed")

// Lock resolves the manifest into uv.lock without touching the environment.
// With check set it only verifies the lockfile is current and writes nothing.
func Lock(projectDir string, check bool) error {
	args := []string{"lock"}
	if check {
		args = append(args, "--check")
	}
	cmd := exec.Command("uv", args...)
	cmd.Dir = projectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrLockFailed, err)
	}
	return nil
}

// Version returns the installed uv version string, e.g. "uv 0.5.1".
func Version() (string, error) {
	out, err := output(".", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsInstalled returns true if uv is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("uv")
	return err == nil
}

// output executes a uv command and returns its stdout.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("uv", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("uv %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
