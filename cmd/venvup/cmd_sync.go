package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/ananthunalloor/venvup/internal/ui"
	"github.com/ananthunalloor/venvup/internal/uv"
	"github.com/ananthunalloor/venvup/internal/venv"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create or update the environment to match the lockfile",
		RunE:  runSync,
	}
	cmd.Flags().Bool("frozen", false, "Install from the lockfile as-is, failing if it is missing")
	cmd.Flags().Bool("locked", false, "Assert the lockfile is up to date with the manifest")
	cmd.Flags().Bool("no-dev", false, "Omit the dev dependency group")
	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	frozen, _ := cmd.Flags().GetBool("frozen")
	locked, _ := cmd.Flags().GetBool("locked")
	noDev, _ := cmd.Flags().GetBool("no-dev")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	steps := ui.NewSteps(cmd.ErrOrStderr(), 1)
	steps.Start("Syncing dependencies")
	opts := uv.SyncOpts{Frozen: frozen, Locked: locked, NoDev: noDev}
	if err := syncProject(ctx, opts, steps); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Sync complete.")
	return nil
}

// syncProject runs the synchronize step: a writability preflight, the uv
// sync invocation, and the sync stamp. uv owns resolution and installation;
// its diagnostics pass through untouched. No retries: one invocation either
// succeeds or surfaces the failure.
func syncProject(ctx *project.Context, opts uv.SyncOpts, steps *ui.Steps) error {
	if err := checkWritable(ctx); err != nil {
		return err
	}

	if ctx.Config.EnvDir != "" {
		opts.EnvDir = ctx.Config.EnvDir
	}
	opts.ExtraArgs = append(opts.ExtraArgs, ctx.Config.UVArgs...)

	if err := uv.Sync(ctx.Root, opts); err != nil {
		return err
	}

	// The stamp is written only after a successful sync, so an interrupted
	// sync can never report as fresh. uv creates the lockfile during the
	// first sync of a fresh project, so the stamp source is re-resolved
	// here instead of taken from the pre-sync context.
	source := ctx.ManifestPath
	if _, statErr := os.Stat(ctx.LockPath); statErr == nil {
		source = ctx.LockPath
	}
	digest, err := venv.HashFile(source)
	if err == nil {
		if werr := ctx.Env().WriteStamp(digest); werr != nil {
			steps.Log("Warning: %v", werr)
		}
	}
	return nil
}

// checkWritable probes that the environment directory can be created or
// modified before uv runs, so permission problems surface as such instead
// of as a resolution failure. Matches os.ErrPermission with errors.Is.
func checkWritable(ctx *project.Context) error {
	parent := ctx.Root
	if env := ctx.Env(); env.Exists() {
		parent = env.Dir
	}
	f, err := os.CreateTemp(parent, ".venvup-probe-*")
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("environment directory is not writable: %w", err)
		}
		return fmt.Errorf("probing %s: %w", parent, err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}
