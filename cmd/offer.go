package cmd

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/adapters/api"
	"github.com/mvetrov/assetmart-cli/internal/adapters/render/market"
	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newOfferCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Review and act on offers",
	}

	cmd.AddCommand(
		newOfferListCmd(app),
		newOfferActionCmd(app, "accept", "Accept an offer", app.client.AcceptOffer),
		newOfferActionCmd(app, "reject", "Reject an offer", app.client.RejectOffer),
		newOfferActionCmd(app, "withdraw", "Withdraw your own offer", app.client.WithdrawOffer),
		newOfferCounterCmd(app),
	)

	return cmd
}

func newOfferListCmd(app *app) *cobra.Command {
	var page, pageSize int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List offers on your listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAuth(cmd.Context(), app); err != nil {
				return err
			}

			var result domain.Page[domain.Offer]
			err := runFetch(cmd, "Fetching offers...", asJSON, func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = app.client.Offers(ctx, newPagination(page, pageSize), api.QueryOptions{})
				return fetchErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), market.RenderOffers(result, market.RenderOptions{Now: app.now()}))
			return err
		},
	}

	addPaginationFlags(cmd, &page, &pageSize)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newOfferActionCmd(app *app, action, short string, run func(context.Context, int64) (domain.Offer, error)) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := requireAuth(cmd.Context(), app); err != nil {
				return err
			}

			offer, err := run(cmd.Context(), id)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Offer #%d is now %s\n", offer.ID, offer.Status.Label())
			return nil
		},
	}
}

func newOfferCounterCmd(app *app) *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "counter <id>",
		Short: "Counter an offer with a new amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := requireAuth(cmd.Context(), app); err != nil {
				return err
			}

			offer, err := app.client.CounterOffer(cmd.Context(), id, amount)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Offer #%d countered at %.2f (%s)\n", offer.ID, offer.Amount, offer.Status.Label())
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Counter-offer amount")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
