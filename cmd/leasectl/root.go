package main

import (
	"log/slog"

	"lease-engine/internal/handler/middleware"
	"lease-engine/internal/pkg/config"

	"github.com/spf13/cobra"
)

type env struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	cmd := &cobra.Command{
		Use:           "leasectl",
		Short:         "Operator tools for the lease engine",
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = middleware.NewLogger(cfg.Log).GetSlogLogger()
			return nil
		},
	}
	cmd.AddCommand(newSchemaCmd(e), newTokenCmd(e))
	return cmd
}
