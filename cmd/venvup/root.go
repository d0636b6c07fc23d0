package main

import (
	"os"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/ananthunalloor/venvup/internal/shell"
	"github.com/ananthunalloor/venvup/internal/ui"
	"github.com/ananthunalloor/venvup/internal/uv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venvup",
		Short: "Bootstrap a project-local Python environment with uv",
		Long: `venvup ensures a project-local virtual environment exists, synced to the
lockfile by uv, and prints shell code that activates it. Run it bare in a
project directory and evaluate its output:

    eval "$(venvup)"`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE:    runBootstrap,
		// Errors reach main, which prints them to stderr. A usage dump on
		// failure would land on stdout and get eval'd by the caller's shell.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("project", ".", "Project root directory")

	cmd.AddCommand(
		newSyncCmd(),
		newActivateCmd(),
		newRunCmd(),
		newStatusCmd(),
		newLockCmd(),
		newInitCmd(),
		newDoctorCmd(),
		newCleanCmd(),
	)

	return cmd
}

// runBootstrap is the bare "venvup" invocation: synchronize, then emit
// activation instructions. The activation step never runs against a
// directory a failed sync may have left inconsistent.
func runBootstrap(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	steps := ui.NewSteps(cmd.ErrOrStderr(), 2)
	steps.Start("Syncing dependencies")
	if err := syncProject(ctx, uv.SyncOpts{}, steps); err != nil {
		return err
	}

	steps.Start("Activating environment")
	dialect, err := shell.Parse(ctx.Config.Shell, os.Environ())
	if err != nil {
		return err
	}
	return emitActivation(cmd.OutOrStdout(), cmd.ErrOrStderr(), ctx, dialect)
}
