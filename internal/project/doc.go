// Package project integrates manifest, lock and config loading with path
// resolution. It provides the Context type that holds resolved project paths
// and loaded configuration for a single uv-managed Python project.
package project
