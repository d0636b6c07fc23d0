package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ananthunalloor/venvup/internal/config"
	"github.com/ananthunalloor/venvup/internal/lock"
	"github.com/ananthunalloor/venvup/internal/manifest"
	"github.com/ananthunalloor/venvup/internal/venv"
)

// Context holds the resolved paths and loaded config for a project.
type Context struct {
	Root         string
	ManifestPath string
	LockPath     string
	Manifest     *manifest.Pyproject
	Lock         *lock.File // may be nil
	Config       config.Config
}

// Load resolves project paths and loads the manifest (and lock and tool
// config if present). A missing manifest surfaces as manifest.ErrMissing:
// the directory is not a project and nothing below it may be touched.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(root, manifest.Filename)
	lockPath := filepath.Join(root, lock.Filename)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Root:         root,
		ManifestPath: manifestPath,
		LockPath:     lockPath,
		Manifest:     m,
		Config:       cfg,
	}

	if _, statErr := os.Stat(lockPath); statErr == nil {
		lf, err := lock.Load(lockPath)
		if err != nil {
			return nil, err
		}
		ctx.Lock = lf
	}

	return ctx, nil
}

// EnvDirName returns the environment directory name relative to the root,
// honoring the env_dir config override.
func (c *Context) EnvDirName() string {
	if c.Config.EnvDir != "" {
		return c.Config.EnvDir
	}
	return venv.DefaultDir
}

// Env returns the project's environment directory model.
func (c *Context) Env() *venv.Env {
	return venv.New(filepath.Join(c.Root, c.EnvDirName()))
}

// HasLock reports whether a lockfile is present on disk.
func (c *Context) HasLock() bool {
	return c.Lock != nil
}

// StampSource returns the file whose hash stands in for "what was synced":
// the lockfile when present, otherwise the manifest.
func (c *Context) StampSource() string {
	if c.HasLock() {
		return c.LockPath
	}
	return c.ManifestPath
}
