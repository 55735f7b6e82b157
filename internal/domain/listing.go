package domain

import "time"

type AssetType string

const (
	AssetDomain  AssetType = "domain"
	AssetWebsite AssetType = "website"
	AssetApp     AssetType = "app"
	AssetNFT     AssetType = "nft"
)

type Listing struct {
	ID          int64
	Title       string
	AssetType   AssetType
	Description string
	Price       float64
	Currency    string
	Status      Status
	SellerID    int64
	CreatedAt   time.Time
}

// ListingInput is the create/update payload. Zero-valued fields are sent as
// given; the server validates.
type ListingInput struct {
	Title       string
	AssetType   AssetType
	Description string
	Price       float64
	Currency    string
}

type Offer struct {
	ID        int64
	ListingID int64
	BuyerID   int64
	Amount    float64
	Currency  string
	Message   string
	Status    Status
	CreatedAt time.Time
}

type Order struct {
	ID           int64
	ListingID    int64
	BuyerID      int64
	SellerID     int64
	Amount       float64
	Currency     string
	Status       Status
	EscrowStatus Status
	CreatedAt    time.Time
}
