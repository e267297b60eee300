package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errMissingDeliveryAddress = errors.New("delivery address is required for delivery orders")

type AddToCartRequest struct {
	ArtPieceID uint `json:"art_piece_id"`
	Quantity   int  `json:"quantity"`
}

func (req *AddToCartRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ArtPieceID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type CheckoutRequest struct {
	OrderType       string `json:"order_type"`
	DeliveryAddress string `json:"delivery_address"`
}

func (req *CheckoutRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.OrderType, validation.Required, validation.In("pickup", "delivery")),
	)
	if err != nil {
		return err
	}

	if req.OrderType == "delivery" && req.DeliveryAddress == "" {
		return errMissingDeliveryAddress
	}

	return nil
}
