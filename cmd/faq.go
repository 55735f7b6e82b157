package cmd

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/adapters/api"
	"github.com/mvetrov/assetmart-cli/internal/adapters/render/market"
	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFAQCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "faq",
		Short: "Show frequently asked questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var faqs []domain.FAQ
			err := runFetch(cmd, "Fetching FAQ...", asJSON, func(ctx context.Context) error {
				var fetchErr error
				faqs, fetchErr = app.client.FAQs(ctx, api.QueryOptions{})
				return fetchErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, faqs)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), market.RenderFAQs(faqs))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
