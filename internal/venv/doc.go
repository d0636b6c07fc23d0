// Package venv models a project-local virtual environment directory: its
// on-disk layout, the activation script inside it, the pyvenv.cfg metadata
// uv writes, and the sync stamp venvup records after a successful sync.
// The environment's contents are owned entirely by uv.
package venv
