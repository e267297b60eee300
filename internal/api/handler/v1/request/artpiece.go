package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errNegativeValue = errors.New("must be zero or greater")

type ArtPieceRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Image          string          `json:"image"`
	Quantity       int             `json:"quantity"`
	ArtistID       uint            `json:"artist_id"`
	IsActive       *bool           `json:"is_active"`
}

func (req *ArtPieceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Category, validation.Required, validation.In("Nature", "History", "Photography", "Other")),
		validation.Field(&req.EstimatedValue, validation.By(validatePositiveDecimal)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.ArtistID, validation.Required),
	)
}

func (req *ArtPieceRequest) Active() bool {
	if req.IsActive == nil {
		return true
	}

	return *req.IsActive
}

func validatePositiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return errNegativeValue
	}

	return nil
}
