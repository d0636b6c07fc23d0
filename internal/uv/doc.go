// Package uv wraps the uv CLI commands venvup issues: sync, lock and
// version probing, nothing else. Dependency resolution, installation and
// caching all stay inside uv. uv's own stdout/stderr are passed through so
// its diagnostics reach the user untranslated.
package uv
