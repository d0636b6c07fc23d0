package main

import (
	"encoding/json"

	"github.com/ananthunalloor/venvup/internal/project"
	"github.com/ananthunalloor/venvup/internal/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show project and environment status",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type projectStatus struct {
	Name           string `json:"name"`
	RequiresPython string `json:"requires_python,omitempty"`
	Declared       int    `json:"declared"`
	Locked         int    `json:"locked"`
	LockPresent    bool   `json:"lock_present"`
	EnvDir         string `json:"env_dir"`
	Synced         bool   `json:"synced"`
	Python         string `json:"python,omitempty"`
	Freshness      string `json:"freshness"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	s := collectStatus(ctx)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	tbl := ui.NewTable(out, "FIELD", "VALUE")
	tbl.Row("project", s.Name)
	if s.RequiresPython != "" {
		tbl.Row("requires-python", s.RequiresPython)
	}
	tbl.Row("declared", s.Declared)
	if s.LockPresent {
		tbl.Row("locked", s.Locked)
	} else {
		tbl.Row("locked", "no lockfile")
	}
	tbl.Row("env dir", s.EnvDir)
	state := "not created"
	if s.Synced {
		state = "synced"
	} else if ctx.Env().Exists() {
		state = "incomplete"
	}
	tbl.Row("env state", state)
	if s.Python != "" {
		tbl.Row("python", s.Python)
	}
	tbl.Row("freshness", s.Freshness)
	return tbl.Flush()
}

func collectStatus(ctx *project.Context) projectStatus {
	s := projectStatus{
		Name:           ctx.Manifest.Project.Name,
		RequiresPython: ctx.Manifest.Project.RequiresPython,
		Declared:       ctx.Manifest.DeclaredCount(),
		LockPresent:    ctx.HasLock(),
		EnvDir:         ctx.EnvDirName(),
		Freshness:      "-",
	}
	if ctx.Lock != nil {
		s.Locked = len(ctx.Lock.Packages)
	}

	env := ctx.Env()
	if !env.Synced() {
		return s
	}
	s.Synced = true
	s.Freshness = string(env.FreshnessAgainst(ctx.StampSource()))

	if cfg, err := env.ReadCfg(); err == nil {
		s.Python = cfg.Version
	}
	return s
}
