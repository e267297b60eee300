package domain

import (
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID         uint            `json:"id"`
	CartID     uint            `json:"cart_id"`
	ArtPieceID uint            `json:"art_piece_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// CartLine is a cart item joined with its art piece, as shown to the caller.
// The total is derived, never persisted.
type CartLine struct {
	ArtPieceID uint            `json:"art_piece_id"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type CartView struct {
	CartID uint       `json:"cart_id"`
	Items  []CartLine `json:"items"`
}

func (v CartView) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range v.Items {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return total
}
