package manifest

import (
	"regexp"
	"strings"
)

// Pyproject represents the subset of a pyproject.toml manifest that venvup
// reads. The full schema is owned by uv; everything else is ignored.
type Pyproject struct {
	Project          Project             `toml:"project"`
	DependencyGroups map[string][]string `toml:"dependency-groups,omitempty"`
}

// Project is the PEP 621 [project] table.
type Project struct {
	Name                 string              `toml:"name"`
	Version              string              `toml:"version,omitempty"`
	Description          string              `toml:"description,omitempty"`
	RequiresPython       string              `toml:"requires-python,omitempty"`
	Dependencies         []string            `toml:"dependencies,omitempty"`
	OptionalDependencies map[string][]string `toml:"optional-dependencies,omitempty"`
}

var separators = regexp.MustCompile(`[-_.]+`)

// NormalizeName normalizes a distribution name per PEP 503: lowercase, with
// runs of -, _ and . collapsed to a single hyphen.
func NormalizeName(name string) string {
	return strings.ToLower(separators.ReplaceAllString(name, "-"))
}

// DependencyName extracts the distribution name from a PEP 508 requirement
// string ("requests>=2.31", "uvicorn[standard]; sys_platform != 'win32'")
// and returns it normalized.
func DependencyName(req string) string {
	req = strings.TrimSpace(req)
	end := len(req)
	for i, r := range req {
		if r == '[' || r == ' ' || r == '<' || r == '>' || r == '=' || r == '!' || r == '~' || r == ';' || r == '(' || r == '@' {
			end = i
			break
		}
	}
	return NormalizeName(req[:end])
}

// Declares reports whether the manifest declares a dependency with the given
// distribution name, in the main set, any dependency group, or any extra.
func (p *Pyproject) Declares(name string) bool {
	name = NormalizeName(name)
	for _, req := range p.Project.Dependencies {
		if DependencyName(req) == name {
			return true
		}
	}
	for _, group := range p.DependencyGroups {
		for _, req := range group {
			if DependencyName(req) == name {
				return true
			}
		}
	}
	for _, extra := range p.Project.OptionalDependencies {
		for _, req := range extra {
			if DependencyName(req) == name {
				return true
			}
		}
	}
	return false
}

// DeclaredCount returns the number of requirements in the main dependency set.
func (p *Pyproject) DeclaredCount() int {
	return len(p.Project.Dependencies)
}
