package response

import (
	"github.com/shopspring/decimal"

	"github.com/gallerist/gallery-api/internal/domain"
)

type CartResponse struct {
	CartID uint              `json:"cart_id"`
	Items  []domain.CartLine `json:"items"`
	Total  decimal.Decimal   `json:"total"`
}

func NewCartResponse(view domain.CartView) CartResponse {
	return CartResponse{
		CartID: view.CartID,
		Items:  view.Items,
		Total:  view.Total(),
	}
}

type CheckoutResponse struct {
	OrderID     uint            `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Message     string          `json:"message"`
}
