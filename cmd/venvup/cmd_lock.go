package main

import (
	"fmt"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/ananthunalloor/venvup/internal/uv"
	"github.com/spf13/cobra"
)

func newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Resolve the manifest into uv.lock without syncing",
		RunE:  runLock,
	}
	cmd.Flags().Bool("check", false, "Assert the lockfile is up to date without writing")
	return cmd
}

func runLock(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	check, _ := cmd.Flags().GetBool("check")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	if err := uv.Lock(ctx.Root, check); err != nil {
		return err
	}
	if check {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Lockfile is up to date.")
	} else {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Lockfile updated.")
	}
	return nil
}
