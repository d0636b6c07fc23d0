package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ananthunalloor/venvup/internal/testutil"
)

// runVenvup executes the run subcommand with --project passed on the
// command line, the way a caller would.
func runVenvup(t *testing.T, dir string, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(append([]string{"run", "--project", dir, "--"}, args...))
	return root.Execute()
}

func TestRunRun_appliesEnvironment(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if err := runVenvup(t, dir, "sh", "-c", `printf %s "$VIRTUAL_ENV" > venv_marker`); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "venv_marker"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); filepath.Base(got) != ".venv" {
		t.Errorf("VIRTUAL_ENV = %q, want the project .venv", got)
	}
}

func TestRunRun_resolvesToolsFromEnvironment(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if err := runVenvup(t, dir, "sh", "-c", `command -v python > python_marker`); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "python_marker"))
	if err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(string(data))
	want := filepath.Join(".venv", "bin", "python")
	if !strings.HasSuffix(got, want) {
		t.Errorf("python resolved to %q, want a path inside %s", got, want)
	}
}

func TestRunRun_projectFlagEqualsForm(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")
	if _, _, err := execRoot(t, "--project", dir, "sync"); err != nil {
		t.Fatalf("sync: %v", err)
	}

	root := newRootCmd()
	root.SetArgs([]string{"run", "--project=" + dir, "--", "sh", "-c", "touch eq_marker"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "eq_marker")); err != nil {
		t.Error("--project= form not honored")
	}
}

func TestRunRun_requiresSyncedEnvironment(t *testing.T) {
	testutil.InstallFakeUV(t)
	dir := testutil.WriteProject(t, t.TempDir(), "numpy")

	if err := runVenvup(t, dir, "true"); err == nil {
		t.Fatal("expected error when the environment is not synced")
	}
}

func TestRunRun_noArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"run"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error when no args given to run")
	}
}

func TestRunRun_onlyDashDash(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"run", "--"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error when only -- given to run")
	}
}
