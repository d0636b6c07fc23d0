package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ananthunalloor/venvup/internal/testutil"
)

func TestRunStatus_beforeSync(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy", "pyserial")

	stdout, _, err := execRoot(t, "--project", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}

	var s projectStatus
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if s.Name != "testproj" {
		t.Errorf("name = %q", s.Name)
	}
	if s.Declared != 2 || s.Locked != 2 {
		t.Errorf("declared/locked = %d/%d, want 2/2", s.Declared, s.Locked)
	}
	if s.Synced {
		t.Error("synced = true before any sync")
	}
	if s.Freshness != "-" {
		t.Errorf("freshness = %q, want -", s.Freshness)
	}
}

func TestRunStatus_afterSync(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	stdout, _, err := execRoot(t, "--project", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}

	var s projectStatus
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !s.Synced {
		t.Error("synced = false after sync")
	}
	if s.Freshness != "fresh" {
		t.Errorf("freshness = %q, want fresh", s.Freshness)
	}
	if s.Python != "3.12.4" {
		t.Errorf("python = %q", s.Python)
	}
}

func TestRunStatus_freshAfterFirstSync(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, "numpy")

	// No lockfile yet; uv creates it during the sync. The stamp must track
	// the lockfile that sync produced, not the pre-sync manifest.
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "uv.lock")); err != nil {
		t.Fatal("sync did not create the lockfile")
	}

	stdout, _, err := execRoot(t, "--project", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	var s projectStatus
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !s.Synced {
		t.Error("synced = false after sync")
	}
	if s.Freshness != "fresh" {
		t.Errorf("freshness = %q immediately after a successful sync, want fresh", s.Freshness)
	}
}

func TestRunStatus_staleAfterLockEdit(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	// The lockfile changes without a re-sync.
	testutil.WriteLock(t, dir, "numpy", "pandas")

	stdout, _, err := execRoot(t, "--project", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	var s projectStatus
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if s.Freshness != "stale" {
		t.Errorf("freshness = %q, want stale", s.Freshness)
	}
}

func TestRunStatus_table(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")

	stdout, _, err := execRoot(t, "--project", dir, "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	for _, want := range []string{"FIELD", "testproj", "env state", "not created"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("table output missing %q:\n%s", want, stdout)
		}
	}
}
