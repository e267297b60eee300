package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type PaymentRequest struct {
	PayerName          string `json:"payer_name"`
	PayerCardNumber    string `json:"payer_card_number"`
	PayerExpiry        string `json:"payer_expiry"`
	PayerCardType      string `json:"payer_card_type"`
	ReceiverName       string `json:"receiver_name"`
	ReceiverCardNumber string `json:"receiver_card_number"`
}

func (req *PaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PayerName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.PayerCardNumber, validation.Required, is.CreditCard),
		validation.Field(&req.PayerExpiry, validation.Required, validation.Length(4, 7)),
		validation.Field(&req.PayerCardType, validation.Required, validation.In("visa", "mastercard", "amex")),
		validation.Field(&req.ReceiverName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ReceiverCardNumber, validation.Required, is.CreditCard),
	)
}
