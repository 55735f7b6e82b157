package cmd

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/adapters/api"
	"github.com/mvetrov/assetmart-cli/internal/adapters/render/market"
	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newConversationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversation",
		Aliases: []string{"conversations"},
		Short:   "Manage support conversations",
	}

	cmd.AddCommand(newConversationListCmd(app), newConversationDeleteCmd(app))

	return cmd
}

func newConversationListCmd(app *app) *cobra.Command {
	var page, pageSize int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your support conversations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Hydrate(cmd.Context()); err != nil {
				return err
			}

			// Skip the call entirely when anonymous: the endpoint requires a
			// token and a guaranteed 401 is not worth a round trip.
			skip := !app.sessions.Session().IsAuthenticated()

			var result domain.Page[domain.Conversation]
			err := runFetch(cmd, "Fetching conversations...", asJSON, func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = app.client.Conversations(ctx, newPagination(page, pageSize), api.QueryOptions{Skip: skip})
				return fetchErr
			})
			if err != nil {
				return err
			}

			if skip {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Sign in to view your conversations.")
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), market.RenderConversations(result, market.RenderOptions{Now: app.now()}))
			return err
		},
	}

	addPaginationFlags(cmd, &page, &pageSize)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newConversationDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := requireAuth(cmd.Context(), app); err != nil {
				return err
			}

			if err := app.client.DeleteConversation(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted conversation #%d\n", id)
			return nil
		},
	}
}
