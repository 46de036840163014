package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/kartgate/internal/factory"
	"github.com/mcoot/kartgate/internal/model"
	"github.com/mcoot/kartgate/internal/services/auth"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Interactive login prompt",
		Long: `Prompts for an action (register or login), a username and a password until a
login succeeds, then launches the game for that player.

Accounts only live for the duration of the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			app := factory.New(factory.Config{
				Logger:     commandLogger(cmd.ErrOrStderr()),
				GameOutput: out.GameWriter(),
			})
			gate := app.NewGate()
			in := bufio.NewScanner(cmd.InOrStdin())

			read := func(label string) (string, error) {
				out.Prompt(label)
				if !in.Scan() {
					if err := in.Err(); err != nil {
						return "", fmt.Errorf("read %s: %w", label, err)
					}
					return "", model.ErrInputClosed
				}
				return in.Text(), nil
			}

			for {
				rawAction, err := read("Action [register/login]")
				if err != nil {
					return err
				}
				action, err := auth.ParseAction(rawAction)
				if err != nil {
					out.PrintError(err)
					continue
				}

				username, err := read("User")
				if err != nil {
					return err
				}
				password, err := read("Pass")
				if err != nil {
					return err
				}

				result, err := gate.Submit(action, username, password)
				if err != nil {
					return err
				}
				out.Print(SubmitResult{
					Message:    result.Message,
					Outcome:    result.Outcome.String(),
					PlayerName: result.PlayerName,
				})

				if result.Authenticated() {
					return app.GameLauncher.Launch(cmd.Context(), gate.PlayerName())
				}
			}
		},
	}
}
