package api

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/domain"
)

const offersTag = "offers"

type offerSchema struct {
	ID        int64   `json:"id"`
	ListingID int64   `json:"listing_id"`
	BuyerID   int64   `json:"buyer_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type counterOfferRequest struct {
	Amount float64 `json:"amount"`
}

func (c *Client) Offers(ctx context.Context, page domain.Pagination, opts QueryOptions) (domain.Page[domain.Offer], error) {
	var result pageSchema[offerSchema]
	if err := c.GetJSON(ctx, "offers", pageArgs(page), &result, opts); err != nil {
		return domain.Page[domain.Offer]{}, err
	}

	return fromPageSchema(result, fromOfferSchema), nil
}

func (c *Client) AcceptOffer(ctx context.Context, id int64) (domain.Offer, error) {
	return c.offerAction(ctx, id, "accept", nil)
}

func (c *Client) RejectOffer(ctx context.Context, id int64) (domain.Offer, error) {
	return c.offerAction(ctx, id, "reject", nil)
}

func (c *Client) WithdrawOffer(ctx context.Context, id int64) (domain.Offer, error) {
	return c.offerAction(ctx, id, "withdraw", nil)
}

func (c *Client) CounterOffer(ctx context.Context, id int64, amount float64) (domain.Offer, error) {
	return c.offerAction(ctx, id, "counter", counterOfferRequest{Amount: amount})
}

// Offer actions also invalidate cached orders: accepting an offer creates an
// order server-side.
func (c *Client) offerAction(ctx context.Context, id int64, action string, body any) (domain.Offer, error) {
	var offer offerSchema
	if err := c.PostJSON(ctx, fmt.Sprintf("offers/%d/%s", id, action), body, &offer, offersTag, ordersTag); err != nil {
		return domain.Offer{}, err
	}

	return fromOfferSchema(offer), nil
}

func fromOfferSchema(offer offerSchema) domain.Offer {
	return domain.Offer{
		ID:        offer.ID,
		ListingID: offer.ListingID,
		BuyerID:   offer.BuyerID,
		Amount:    offer.Amount,
		Currency:  offer.Currency,
		Message:   offer.Message,
		Status:    domain.Status(offer.Status),
		CreatedAt: parseTime(offer.CreatedAt),
	}
}
