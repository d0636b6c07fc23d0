package main

import (
	"os"
	"os/exec"
)

// runInEnv runs a command with the given environ applied (no shell
// expansion). The child inherits the terminal; its exit status is the
// caller's result.
func runInEnv(dir string, environ []string, argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // argv comes from the user's own command line
	cmd.Dir = dir
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
