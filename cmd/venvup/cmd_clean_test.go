package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ananthunalloor/venvup/internal/testutil"
)

func TestRunClean_requiresForce(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")

	if _, _, err := execRoot(t, "--project", dir, "clean"); err == nil {
		t.Fatal("expected error without --force")
	}
}

func TestRunClean_removesEnvironment(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if _, _, err := execRoot(t, "--project", dir, "clean", "--force"); err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".venv")); err == nil {
		t.Error("environment directory should be removed")
	}
	// The project itself is untouched.
	if _, err := os.Stat(filepath.Join(dir, "pyproject.toml")); err != nil {
		t.Error("manifest must survive clean")
	}
}

func TestRunClean_refusesOutsideProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".venv"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execRoot(t, "--project", dir, "clean", "--force"); err == nil {
		t.Fatal("expected refusal without a manifest")
	}
	if _, err := os.Stat(filepath.Join(dir, ".venv")); err != nil {
		t.Error("stray .venv must not be deleted outside a project")
	}
}

func TestRunClean_nothingToRemove(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")

	stdout, _, err := execRoot(t, "--project", dir, "clean", "--force")
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if stdout == "" {
		t.Error("expected a nothing-to-remove notice")
	}
}
