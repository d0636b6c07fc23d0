package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/ananthunalloor/venvup/internal/shell"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newActivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Print shell code that activates the environment",
		Long: `Print shell code that activates the project environment when evaluated
by the invoking shell:

    eval "$(venvup activate)"

A child process cannot mutate its parent's environment, so activation is
always applied by the caller's own shell.`,
		RunE: runActivate,
	}
	cmd.Flags().String("shell", "", "Snippet dialect: posix, fish, or powershell (default: detect from $SHELL)")
	return cmd
}

func runActivate(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	shellName, _ := cmd.Flags().GetString("shell")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	if shellName == "" {
		shellName = ctx.Config.Shell
	}
	dialect, err := shell.Parse(shellName, os.Environ())
	if err != nil {
		return err
	}
	return emitActivation(cmd.OutOrStdout(), cmd.ErrOrStderr(), ctx, dialect)
}

// emitActivation verifies the activation artifact exists and writes the
// activation snippet to out. When out is an interactive terminal the snippet
// is going to a human instead of an eval, so a usage hint goes to errOut.
func emitActivation(out, errOut io.Writer, ctx *project.Context, d shell.Dialect) error {
	env := ctx.Env()
	if _, err := env.ActivateScript(); err != nil {
		return fmt.Errorf("%w (run venvup sync first)", err)
	}
	if _, err := io.WriteString(out, shell.Snippet(d, env.Dir, env.BinDir())); err != nil {
		return err
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprintf(errOut, "\nRun eval \"$(venvup activate)\" to apply this to your shell.\n")
	}
	return nil
}
