package cmd

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/adapters/api"
	"github.com/mvetrov/assetmart-cli/internal/adapters/render/market"
	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newOrderCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Review orders and their escrow state",
	}

	cmd.AddCommand(newOrderListCmd(app), newOrderGetCmd(app))

	return cmd
}

func newOrderListCmd(app *app) *cobra.Command {
	var page, pageSize int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireAuth(cmd.Context(), app); err != nil {
				return err
			}

			var result domain.Page[domain.Order]
			err := runFetch(cmd, "Fetching orders...", asJSON, func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = app.client.Orders(ctx, newPagination(page, pageSize), api.QueryOptions{})
				return fetchErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), market.RenderOrders(result, market.RenderOptions{Now: app.now()}))
			return err
		},
	}

	addPaginationFlags(cmd, &page, &pageSize)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newOrderGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := requireAuth(cmd.Context(), app); err != nil {
				return err
			}

			order, err := app.client.Order(cmd.Context(), id, api.QueryOptions{})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, order)
			}

			page := domain.Page[domain.Order]{Items: []domain.Order{order}, Total: 1, Page: 1, PageSize: 1, TotalPages: 1}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), market.RenderOrders(page, market.RenderOptions{Now: app.now()}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
