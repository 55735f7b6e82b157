package cmd

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/adapters/api"
	"github.com/mvetrov/assetmart-cli/internal/adapters/render/market"
	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListingCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Browse and manage marketplace listings",
	}

	cmd.AddCommand(
		newListingListCmd(app),
		newListingGetCmd(app),
		newListingCreateCmd(app),
		newListingUpdateCmd(app),
		newListingDeleteCmd(app),
	)

	return cmd
}

func newListingListCmd(app *app) *cobra.Command {
	var page, pageSize int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marketplace listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var result domain.Page[domain.Listing]
			err := runFetch(cmd, "Fetching listings...", asJSON, func(ctx context.Context) error {
				var fetchErr error
				result, fetchErr = app.client.Listings(ctx, newPagination(page, pageSize), api.QueryOptions{})
				return fetchErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), market.RenderListings(result, market.RenderOptions{Now: app.now()}))
			return err
		},
	}

	addPaginationFlags(cmd, &page, &pageSize)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newListingGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			listing, err := app.client.Listing(cmd.Context(), id, api.QueryOptions{})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, listing)
			}

			page := domain.Page[domain.Listing]{Items: []domain.Listing{listing}, Total: 1, Page: 1, PageSize: 1, TotalPages: 1}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), market.RenderListings(page, market.RenderOptions{Now: app.now()}))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newListingCreateCmd(app *app) *cobra.Command {
	var input listingFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requirePermission(cmd.Context(), app, domain.PermissionManageListings); err != nil {
				return err
			}

			listing, err := app.client.CreateListing(cmd.Context(), input.toInput())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created listing #%d (%s)\n", listing.ID, listing.Status.Label())
			return nil
		},
	}

	input.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newListingUpdateCmd(app *app) *cobra.Command {
	var input listingFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := requirePermission(cmd.Context(), app, domain.PermissionManageListings); err != nil {
				return err
			}

			listing, err := app.client.UpdateListing(cmd.Context(), id, input.toInput())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated listing #%d (%s)\n", listing.ID, listing.Status.Label())
			return nil
		},
	}

	input.register(cmd)

	return cmd
}

func newListingDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := requirePermission(cmd.Context(), app, domain.PermissionManageListings); err != nil {
				return err
			}

			if err := app.client.DeleteListing(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted listing #%d\n", id)
			return nil
		},
	}
}

type listingFlags struct {
	title       string
	assetType   string
	description string
	price       float64
	currency    string
}

func (f *listingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Listing title")
	cmd.Flags().StringVar(&f.assetType, "type", "", "Asset type: domain, website, app or nft")
	cmd.Flags().StringVar(&f.description, "description", "", "Listing description")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Asking price")
	cmd.Flags().StringVar(&f.currency, "currency", "USD", "Price currency")
}

func (f listingFlags) toInput() domain.ListingInput {
	return domain.ListingInput{
		Title:       f.title,
		AssetType:   domain.AssetType(f.assetType),
		Description: f.description,
		Price:       f.price,
		Currency:    f.currency,
	}
}
