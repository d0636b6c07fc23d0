package lock

// File represents a uv.lock file.
type File struct {
	Version        int       `toml:"version"`
	Revision       int       `toml:"revision,omitempty"`
	RequiresPython string    `toml:"requires-python"`
	Packages       []Package `toml:"package"`
}

// Package records one resolved distribution.
type Package struct {
	Name         string       `toml:"name"`
	Version      string       `toml:"version"`
	Source       Source       `toml:"source,omitempty"`
	Dependencies []Dependency `toml:"dependencies,omitempty"`
}

// Source records where a package was resolved from.
type Source struct {
	Registry  string `toml:"registry,omitempty"`
	Editable  string `toml:"editable,omitempty"`
	Virtual   string `toml:"virtual,omitempty"`
	Directory string `toml:"directory,omitempty"`
}

// Dependency is a reference to another locked package.
type Dependency struct {
	Name string `toml:"name"`
}

// Has reports whether the lock contains a package with the given name.
func (f *File) Has(name string) bool {
	for _, p := range f.Packages {
		if p.Name == name {
			return true
		}
	}
	return false
}

// PackageVersion returns the locked version of a package, or "" if absent.
func (f *File) PackageVersion(name string) string {
	for _, p := range f.Packages {
		if p.Name == name {
			return p.Version
		}
	}
	return ""
}
