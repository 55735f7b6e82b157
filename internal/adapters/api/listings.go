package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/mvetrov/assetmart-cli/internal/domain"
)

const listingsTag = "listings"

type pageSchema[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

type listingSchema struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	AssetType   string  `json:"asset_type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	SellerID    int64   `json:"seller_id"`
	CreatedAt   string  `json:"created_at"`
}

type listingInputSchema struct {
	Title       string  `json:"title"`
	AssetType   string  `json:"asset_type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
}

func (c *Client) Listings(ctx context.Context, page domain.Pagination, opts QueryOptions) (domain.Page[domain.Listing], error) {
	var result pageSchema[listingSchema]
	if err := c.GetJSON(ctx, "listings", pageArgs(page), &result, opts); err != nil {
		return domain.Page[domain.Listing]{}, err
	}

	return fromPageSchema(result, fromListingSchema), nil
}

func (c *Client) Listing(ctx context.Context, id int64, opts QueryOptions) (domain.Listing, error) {
	var listing listingSchema
	if err := c.GetJSON(ctx, fmt.Sprintf("listings/%d", id), nil, &listing, opts); err != nil {
		return domain.Listing{}, err
	}

	return fromListingSchema(listing), nil
}

func (c *Client) CreateListing(ctx context.Context, input domain.ListingInput) (domain.Listing, error) {
	var listing listingSchema
	if err := c.PostJSON(ctx, "listings", toListingInputSchema(input), &listing, listingsTag); err != nil {
		return domain.Listing{}, err
	}

	return fromListingSchema(listing), nil
}

func (c *Client) UpdateListing(ctx context.Context, id int64, input domain.ListingInput) (domain.Listing, error) {
	var listing listingSchema
	if err := c.PutJSON(ctx, fmt.Sprintf("listings/%d", id), toListingInputSchema(input), &listing, listingsTag); err != nil {
		return domain.Listing{}, err
	}

	return fromListingSchema(listing), nil
}

func (c *Client) DeleteListing(ctx context.Context, id int64) error {
	return c.DeleteJSON(ctx, fmt.Sprintf("listings/%d", id), nil, listingsTag)
}

func toListingInputSchema(input domain.ListingInput) listingInputSchema {
	return listingInputSchema{
		Title:       input.Title,
		AssetType:   string(input.AssetType),
		Description: input.Description,
		Price:       input.Price,
		Currency:    input.Currency,
	}
}

func fromListingSchema(listing listingSchema) domain.Listing {
	return domain.Listing{
		ID:          listing.ID,
		Title:       listing.Title,
		AssetType:   domain.AssetType(listing.AssetType),
		Description: listing.Description,
		Price:       listing.Price,
		Currency:    listing.Currency,
		Status:      domain.Status(listing.Status),
		SellerID:    listing.SellerID,
		CreatedAt:   parseTime(listing.CreatedAt),
	}
}

func fromPageSchema[S, T any](page pageSchema[S], convert func(S) T) domain.Page[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}

	return domain.Page[T]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func pageArgs(page domain.Pagination) url.Values {
	return url.Values{
		"page":      []string{strconv.Itoa(page.Page)},
		"page_size": []string{strconv.Itoa(page.PageSize)},
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
