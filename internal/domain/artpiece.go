package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategoryNature      = "Nature"
	CategoryHistory     = "History"
	CategoryPhotography = "Photography"
	CategoryOther       = "Other"
)

const (
	AvailabilityAvailable = "available"
	AvailabilityDisplayed = "displayed"
)

type ArtPiece struct {
	ID             uint            `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Availability   string          `json:"availability"`
	IsActive       bool            `json:"is_active"`
	Image          string          `json:"image"`
	Quantity       int             `json:"quantity"`
	ArtistID       uint            `json:"artist_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsPurchasable reports whether the piece can be added to a cart.
func (p ArtPiece) IsPurchasable() bool {
	return p.IsActive && p.Availability == AvailabilityAvailable && p.Quantity > 0
}
