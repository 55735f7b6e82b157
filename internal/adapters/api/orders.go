package api

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/domain"
)

const ordersTag = "orders"

type orderSchema struct {
	ID           int64   `json:"id"`
	ListingID    int64   `json:"listing_id"`
	BuyerID      int64   `json:"buyer_id"`
	SellerID     int64   `json:"seller_id"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	EscrowStatus string  `json:"escrow_status"`
	CreatedAt    string  `json:"created_at"`
}

func (c *Client) Orders(ctx context.Context, page domain.Pagination, opts QueryOptions) (domain.Page[domain.Order], error) {
	var result pageSchema[orderSchema]
	if err := c.GetJSON(ctx, "orders", pageArgs(page), &result, opts); err != nil {
		return domain.Page[domain.Order]{}, err
	}

	return fromPageSchema(result, fromOrderSchema), nil
}

func (c *Client) Order(ctx context.Context, id int64, opts QueryOptions) (domain.Order, error) {
	var order orderSchema
	if err := c.GetJSON(ctx, fmt.Sprintf("orders/%d", id), nil, &order, opts); err != nil {
		return domain.Order{}, err
	}

	return fromOrderSchema(order), nil
}

func fromOrderSchema(order orderSchema) domain.Order {
	return domain.Order{
		ID:           order.ID,
		ListingID:    order.ListingID,
		BuyerID:      order.BuyerID,
		SellerID:     order.SellerID,
		Amount:       order.Amount,
		Currency:     order.Currency,
		Status:       domain.Status(order.Status),
		EscrowStatus: domain.Status(order.EscrowStatus),
		CreatedAt:    parseTime(order.CreatedAt),
	}
}
