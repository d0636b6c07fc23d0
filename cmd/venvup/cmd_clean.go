package main

import (
	"fmt"
	"os"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the environment directory (destructive, requires --force)",
		RunE:  runClean,
	}
	cmd.Flags().Bool("force", false, "Required to confirm destructive operation")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		return fmt.Errorf("clean is destructive; pass --force to confirm")
	}

	// Resolve through project.Load so a directory without a manifest is
	// never cleaned: a stray .venv elsewhere is not ours to delete. The
	// env_dir override is validated to stay inside the project root.
	ctx, err := project.Load(root)
	if err != nil {
		return fmt.Errorf("refusing to clean: %w", err)
	}

	envDir := ctx.Env().Dir
	if !ctx.Env().Exists() {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Nothing to remove: %s does not exist\n", envDir)
		return nil
	}

	if err := os.RemoveAll(envDir); err != nil {
		return fmt.Errorf("removing environment: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Environment removed: %s\n", envDir)
	return nil
}
