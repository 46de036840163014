package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/kartgate/internal/services/auth"
	"github.com/mcoot/kartgate/internal/services/game"
)

func newSubmitCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:       "submit <register|login>",
		Short:     "Register or log in against a running kartgate server",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"register", "login"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := auth.ParseAction(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}

			req := map[string]string{
				"action":   action.String(),
				"username": user,
				"password": pass,
			}
			var result SubmitResult
			if err := client.Post(cmd.Context(), "/api/v1/submit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)

			if result.Outcome != auth.OutcomeAuthenticated.String() {
				return nil
			}

			launcher := game.NewBannerLauncher(out.GameWriter(), commandLogger(cmd.ErrOrStderr()))
			return launcher.Launch(cmd.Context(), result.PlayerName)
		},
	}

	// empty values are allowed: the server decides what they mean
	cmd.Flags().StringVar(&user, "user", "", "Username")
	cmd.Flags().StringVar(&pass, "pass", "", "Password")

	return cmd
}
