package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type ExhibitionRequest struct {
	Title    string          `json:"title"`
	Date     time.Time       `json:"date"`
	Status   string          `json:"status"`
	Space    int             `json:"space"`
	Category string          `json:"category"`
	Poster   string          `json:"poster"`
	Price    decimal.Decimal `json:"price"`
}

func (req *ExhibitionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Status, validation.In("coming", "ongoing", "completed")),
		validation.Field(&req.Space, validation.Required, validation.Min(1)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Price, validation.By(validatePositiveDecimal)),
	)
}

type AssignArtRequest struct {
	ArtPieceID uint `json:"art_piece_id"`
}

func (req *AssignArtRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ArtPieceID, validation.Required),
	)
}

type RegistrationRequest struct {
	Type      string `json:"type"`
	Attendees int    `json:"attendees"`
}

func (req *RegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.Required, validation.In("individual", "group")),
		validation.Field(&req.Attendees, validation.Required, validation.Min(1)),
	)
}
