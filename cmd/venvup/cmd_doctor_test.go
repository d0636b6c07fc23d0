package main

import (
	"strings"
	"testing"

	"github.com/ananthunalloor/venvup/internal/testutil"
)

func TestRunDoctor_healthyProject(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	stdout, _, err := execRoot(t, "--project", dir, "doctor")
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, stdout)
	}
	for _, want := range []string{"Checking uv...", "Checking manifest... ok", "All checks passed."} {
		if !strings.Contains(stdout, want) {
			t.Errorf("doctor output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRunDoctor_missingManifest(t *testing.T) {
	testutil.InstallFakeUV(t)

	stdout, _, err := execRoot(t, "--project", t.TempDir(), "doctor")
	if err == nil {
		t.Fatal("expected doctor to fail without a manifest")
	}
	if !strings.Contains(stdout, "Checking manifest... FAILED") {
		t.Errorf("doctor output missing manifest failure:\n%s", stdout)
	}
}

func TestRunDoctor_unsyncedEnvironment(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")

	stdout, _, err := execRoot(t, "--project", dir, "doctor")
	if err != nil {
		t.Fatalf("doctor failed: %v", err)
	}
	if !strings.Contains(stdout, "not created (run venvup sync)") {
		t.Errorf("doctor output missing environment hint:\n%s", stdout)
	}
}
