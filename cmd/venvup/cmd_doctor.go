package main

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/ananthunalloor/venvup/internal/uv"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the project environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	// Check uv.
	fmt.Fprint(out, "Checking uv... ")
	uvPath, err := exec.LookPath("uv")
	if err != nil {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  uv is required. Install it from https://docs.astral.sh/uv/")
		ok = false
	} else {
		fmt.Fprintf(out, "found at %s\n", uvPath)

		fmt.Fprint(out, "Checking uv version... ")
		if ver, verr := uv.Version(); verr != nil {
			fmt.Fprintln(out, "ERROR")
			ok = false
		} else {
			fmt.Fprintln(out, ver)
		}
	}

	// Check the project itself.
	root, _ := cmd.Flags().GetString("project")
	fmt.Fprint(out, "Checking manifest... ")
	ctx, loadErr := project.Load(root)
	if loadErr != nil {
		fmt.Fprintf(out, "FAILED\n  %v\n", loadErr)
		ok = false
	} else {
		fmt.Fprintf(out, "ok (%s, %d dependencies)\n",
			ctx.Manifest.Project.Name, ctx.Manifest.DeclaredCount())
		checkProjectState(out, ctx)
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkProjectState reports on the lockfile and environment. Neither being
// absent is an error: both appear on the first sync.
func checkProjectState(out io.Writer, ctx *project.Context) {
	fmt.Fprint(out, "Checking lockfile... ")
	if ctx.HasLock() {
		fmt.Fprintf(out, "ok (%d packages)\n", len(ctx.Lock.Packages))
	} else {
		fmt.Fprintln(out, "not found (created on first sync)")
	}

	fmt.Fprint(out, "Checking environment... ")
	env := ctx.Env()
	switch {
	case !env.Exists():
		fmt.Fprintln(out, "not created (run venvup sync)")
	case !env.Synced():
		fmt.Fprintln(out, "INCOMPLETE: activation script missing (re-run venvup sync)")
	default:
		if cfg, err := env.ReadCfg(); err == nil && cfg.Version != "" {
			fmt.Fprintf(out, "synced (python %s, %s)\n", cfg.Version, env.FreshnessAgainst(ctx.StampSource()))
		} else {
			fmt.Fprintf(out, "synced (%s)\n", env.FreshnessAgainst(ctx.StampSource()))
		}
	}
}
