package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ananthunalloor/venvup/internal/manifest"
	"github.com/ananthunalloor/venvup/internal/venv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Scaffold a new project interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().String("python", ">=3.12", "requires-python constraint for the new project")
	cmd.Flags().Bool("bare", false, "Skip interactive prompts and write a minimal manifest")
	cmd.Flags().Bool("force", false, "Overwrite an existing manifest")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, _ := cmd.Flags().GetString("project")
	python, _ := cmd.Flags().GetString("python")
	bare, _ := cmd.Flags().GetBool("bare")
	force, _ := cmd.Flags().GetBool("force")

	if filepath.IsAbs(name) || strings.Contains(filepath.Clean(name), "..") {
		return fmt.Errorf("invalid project name %q: must be a simple directory name (no absolute paths or ..)", name)
	}

	projDir := filepath.Join(root, name)
	manifestPath := filepath.Join(projDir, manifest.Filename)

	if _, err := os.Stat(manifestPath); err == nil && !force {
		return fmt.Errorf("project %q already has a %s (use --force to overwrite)", name, manifest.Filename)
	}

	p := &manifest.Pyproject{
		Project: manifest.Project{
			Name:           manifest.NormalizeName(name),
			Version:        "0.1.0",
			RequiresPython: python,
		},
	}

	if !bare {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --bare for a minimal manifest")
		}
		if err := fillInteractive(p); err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	if err := os.MkdirAll(projDir, 0755); err != nil { //nolint:gosec // project dir needs to be world-readable
		return fmt.Errorf("creating project directory: %w", err)
	}
	if err := manifest.Save(manifestPath, p); err != nil {
		return err
	}
	if err := writeGitignore(projDir); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project %q created at %s\n", name, projDir)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Run venvup in %s to create and activate its environment.\n", projDir)
	return nil
}

// fillInteractive prompts for the optional manifest fields.
func fillInteractive(p *manifest.Pyproject) error {
	desc, err := promptInput("Project description (optional)", "", nil)
	if err != nil {
		return err
	}
	p.Project.Description = strings.TrimSpace(desc)

	deps, err := interactiveDependencies()
	if err != nil {
		return err
	}
	p.Project.Dependencies = deps

	devGroup, err := promptConfirm("Add a dev dependency group with pytest?")
	if err != nil {
		return err
	}
	if devGroup {
		p.DependencyGroups = map[string][]string{"dev": {"pytest"}}
	}
	return nil
}

// writeGitignore creates .gitignore excluding the environment directory.
// An existing .gitignore is left alone.
func writeGitignore(projDir string) error {
	path := filepath.Join(projDir, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	content := venv.DefaultDir + "/\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // .gitignore needs to be readable
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
