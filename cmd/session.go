package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/adapters/render/market"
	"github.com/mvetrov/assetmart-cli/internal/adapters/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and manage the persisted session",
	}

	cmd.AddCommand(newSessionShowCmd(app), newSessionWatchCmd(app), newSessionClearCmd(app), newSessionLangCmd(app))

	return cmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the session state without contacting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), market.RenderSession(app.sessions.Session(), market.RenderOptions{Now: app.now()}))
			return err
		},
	}
}

// session watch mirrors the browser's cross-tab logout: when another process
// clears the token in the session file, this one drops its session too.
func newSessionWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the session file and log out when another process clears it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watcher := watch.New(app.repo.Path(), func() {
				if err := app.sessions.Logout(context.Background()); err != nil {
					app.logger.Warn("logout after external clear", zap.Error(err))
					return
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Session cleared by another process; signed out.")
			}, app.logger)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (ctrl-c to stop)\n", app.repo.Path())

			err := watcher.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func newSessionLangCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lang <code>",
		Short: "Set the preferred language kept in the session file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.repo.SetLanguage(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s.\n", args[0])
			return nil
		},
	}
}

func newSessionClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the local session without calling the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return nil
		},
	}
}
