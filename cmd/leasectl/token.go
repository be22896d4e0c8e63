package main

import (
	"fmt"
	"time"

	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

// newTokenCmd mints a bearer token signed with the service secret, for
// operators acting as a project and for local testing.
func newTokenCmd(e *env) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token PROJECT_ID",
		Short: "Print a bearer token for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				d, err := time.ParseDuration(e.cfg.JWT.Duration)
				if err != nil {
					return errs.Wrap(err, "JWT_DURATION")
				}
				ttl = d
			}
			token, err := jwt.NewService(e.cfg.JWT.Secret, e.cfg.JWT.Issuer, ttl).GenerateToken(args[0])
			if err != nil {
				return errs.Wrap(err, "sign token")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_DURATION)")
	return cmd
}
