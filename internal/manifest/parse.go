package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"
)

// ErrMissing is returned by Load when no pyproject.toml exists at the given
// path. Callers match it with errors.Is to distinguish "not a project" from
// a malformed manifest.
var ErrMissing = errors.New("no pyproject.toml found")

// Filename is the conventional manifest filename uv discovers in a project root.
const Filename = "pyproject.toml"

// namePattern is the PEP 503 distribution name grammar.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// Load reads and validates a pyproject.toml file.
func Load(path string) (*Pyproject, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates pyproject.toml content.
func Parse(data []byte) (*Pyproject, error) {
	var p Pyproject
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest TOML: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the manifest for errors.
func Validate(p *Pyproject) error { return validate(p) }

// Save validates and writes a manifest to disk.
func Save(path string, p *Pyproject) error {
	if err := validate(p); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // manifest file needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func validate(p *Pyproject) error {
	if p.Project.Name == "" {
		return fmt.Errorf("manifest: project.name is required")
	}
	if !namePattern.MatchString(p.Project.Name) {
		return fmt.Errorf("manifest: invalid project name %q", p.Project.Name)
	}
	for i, req := range p.Project.Dependencies {
		if err := validateRequirement(req, fmt.Sprintf("project.dependencies[%d]", i)); err != nil {
			return err
		}
	}
	for group, reqs := range p.DependencyGroups {
		for i, req := range reqs {
			if err := validateRequirement(req, fmt.Sprintf("dependency-groups.%s[%d]", group, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateRequirement(req, label string) error {
	if DependencyName(req) == "" {
		return fmt.Errorf("manifest: %s: invalid requirement %q", label, req)
	}
	return nil
}
