package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_missingFileDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.EnvDir != "" || c.Shell != "" || len(c.UVArgs) != 0 {
		t.Errorf("missing file should yield zero config, got %+v", c)
	}
}

func TestLoad_valid(t *testing.T) {
	dir := t.TempDir()
	data := []byte("env_dir: .env-ci\nshell: fish\nuv_args: [\"--quiet\"]\n")
	if err := os.WriteFile(filepath.Join(dir, Filename), data, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.EnvDir != ".env-ci" {
		t.Errorf("env_dir = %q", c.EnvDir)
	}
	if c.Shell != "fish" {
		t.Errorf("shell = %q", c.Shell)
	}
	if len(c.UVArgs) != 1 || c.UVArgs[0] != "--quiet" {
		t.Errorf("uv_args = %v", c.UVArgs)
	}
}

func TestParse_absoluteEnvDir(t *testing.T) {
	if _, err := Parse([]byte("env_dir: /tmp/venv\n")); err == nil {
		t.Fatal("expected error for absolute env_dir")
	}
}

func TestParse_escapingEnvDir(t *testing.T) {
	if _, err := Parse([]byte("env_dir: ../venv\n")); err == nil {
		t.Fatal("expected error for env_dir escaping the project root")
	}
}

func TestParse_malformed(t *testing.T) {
	if _, err := Parse([]byte(":\n  - bad")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
