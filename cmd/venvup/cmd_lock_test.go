package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ananthunalloor/venvup/internal/testutil"
)

func TestRunLock_writesLockfile(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, "numpy")

	if _, _, err := execRoot(t, "--project", dir, "lock"); err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "uv.lock")); err != nil {
		t.Error("uv.lock not created")
	}
}

func TestRunLock_checkMissingLockfile(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, "numpy")

	if _, _, err := execRoot(t, "--project", dir, "lock", "--check"); err == nil {
		t.Fatal("expected error when lockfile is missing under --check")
	}
}

func TestRunLock_checkUpToDate(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")

	if _, _, err := execRoot(t, "--project", dir, "lock", "--check"); err != nil {
		t.Fatalf("lock --check failed: %v", err)
	}
}
