package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"

	// PickupAddress is stored in place of a delivery address for pickup orders.
	PickupAddress = "N/A"
)

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

type Order struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user_id"`
	OrderType       string          `json:"order_type"`
	DeliveryAddress string          `json:"delivery_address"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CheckoutResult is returned once an open cart has been converted to an order.
type CheckoutResult struct {
	OrderID     uint            `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type Payment struct {
	ID                 uint            `json:"id"`
	OrderID            uint            `json:"order_id"`
	PayerName          string          `json:"payer_name"`
	PayerCardNumber    string          `json:"payer_card_number"`
	PayerExpiry        string          `json:"payer_expiry"`
	PayerCardType      string          `json:"payer_card_type"`
	ReceiverName       string          `json:"receiver_name"`
	ReceiverCardNumber string          `json:"receiver_card_number"`
	Amount             decimal.Decimal `json:"amount"`
	CreatedAt          time.Time       `json:"created_at"`
}
