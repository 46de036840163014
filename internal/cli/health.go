package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const statusOK = "ok"

func newHealthCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that a kartgate server is accepting logins",
		Long: `Queries /api/v1/health on the server given by --server and prints its status.
Exits non-zero when the server is unreachable, does not answer within --timeout,
or reports anything other than "ok".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var result HealthResult
			if err := client.Get(ctx, "/api/v1/health", &result); err != nil {
				return fmt.Errorf("health check against %s: %w", cfg.ServerURL, err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).Print(result)

			if result.Status != statusOK {
				return fmt.Errorf("server reports status %q", result.Status)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "How long to wait for the server")

	return cmd
}
