package main

import (
	"context"
	"path/filepath"
	"time"

	"lease-engine/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func newSchemaCmd(e *env) *cobra.Command {
	var (
		dryRun  bool
		timeout time.Duration
	)
	apply := &cobra.Command{
		Use:   "apply",
		Short: "Bring the database to migrations/schema.sql with atlas declarative apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return applySchema(ctx, e, dryRun)
		},
	}
	apply.Flags().BoolVar(&dryRun, "dry-run", false, "print the planned statements without applying them")
	apply.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "give up after this long")

	cmd := &cobra.Command{Use: "schema", Short: "Database schema management"}
	cmd.AddCommand(apply)
	return cmd
}

func applySchema(ctx context.Context, e *env, dryRun bool) error {
	schemaFile, err := filepath.Abs(e.cfg.Schema.File)
	if err != nil {
		return errs.Wrap(err, "resolve schema file")
	}

	client, err := atlasexec.NewClient(filepath.Dir(schemaFile), e.cfg.Schema.AtlasBin)
	if err != nil {
		return errs.Wrap(err, "start atlas")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:    e.cfg.DB.BuildDSN(),
		To:     "file://" + filepath.Base(schemaFile),
		DevURL: e.cfg.Schema.DevURL,
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "schema apply")
	}

	for _, stmt := range res.Changes.Pending {
		e.logger.Info("pending", "statement", stmt)
	}
	e.logger.Info("schema applied",
		"file", schemaFile,
		"applied", len(res.Changes.Applied),
		"dry_run", dryRun,
	)
	return nil
}
