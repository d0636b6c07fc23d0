// Package lock reads uv.lock files. Lock files record the exact resolved
// version of every package in the environment, enabling reproducible installs.
// venvup only ever reads them; uv owns writing and updating.
package lock
