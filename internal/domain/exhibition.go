package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ExhibitionComing    = "coming"
	ExhibitionOngoing   = "ongoing"
	ExhibitionCompleted = "completed"
)

type Exhibition struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
	Space     int             `json:"space"`
	Category  string          `json:"category"`
	Poster    string          `json:"poster"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
