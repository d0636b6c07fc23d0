package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/ananthunalloor/venvup/internal/shell"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run -- <command...>",
		Short:              "Run a command with the environment active",
		DisableFlagParsing: true,
		RunE:               runRun,
	}
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	// Flag parsing is disabled so the command after -- arrives untouched,
	// which means the persistent --project flag has to be picked out of
	// argv by hand here.
	root, _ := cmd.Root().PersistentFlags().GetString("project")
	for len(args) > 0 {
		if args[0] == "--project" && len(args) > 1 {
			root = args[1]
			args = args[2:]
			continue
		}
		if v, ok := strings.CutPrefix(args[0], "--project="); ok {
			root = v
			args = args[1:]
			continue
		}
		break
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: venvup run [--project <dir>] -- <command...>")
	}

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	env := ctx.Env()
	if _, err := env.ActivateScript(); err != nil {
		return fmt.Errorf("%w (run venvup sync first)", err)
	}

	environ := shell.Environ(os.Environ(), env.Dir, env.BinDir())
	return runInEnv(ctx.Root, environ, args)
}
