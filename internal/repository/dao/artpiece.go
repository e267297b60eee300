package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrArtPieceNotFound = errors.New("art piece not found")

type ArtPiece struct {
	ID uint `gorm:"primaryKey"`

	Title          string          `gorm:"not null"`
	Description    string
	Category       string          `gorm:"not null"` // "Nature", "History", "Photography", or "Other"
	EstimatedValue decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Availability   string          `gorm:"not null;default:available"` // "available" or "displayed"
	IsActive       bool            `gorm:"not null;default:true"`
	Image          string
	Quantity       int  `gorm:"not null;default:0"` // stock count, never negative
	ArtistID       uint `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ArtPieceDAO struct {
	db *gorm.DB
}

func NewArtPieceDAO(db *gorm.DB) *ArtPieceDAO {
	return &ArtPieceDAO{
		db: db,
	}
}

func (d *ArtPieceDAO) Insert(ctx context.Context, piece ArtPiece) (ArtPiece, error) {
	result := d.db.WithContext(ctx).Create(&piece)
	if result.Error != nil {
		return ArtPiece{}, result.Error
	}

	return piece, nil
}

func (d *ArtPieceDAO) FindByID(ctx context.Context, id uint) (ArtPiece, error) {
	var piece ArtPiece

	result := d.db.WithContext(ctx).First(&piece, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ArtPiece{}, ErrArtPieceNotFound
		}

		return ArtPiece{}, result.Error
	}

	return piece, nil
}

func (d *ArtPieceDAO) FindAll(ctx context.Context) ([]ArtPiece, error) {
	var pieces []ArtPiece

	result := d.db.WithContext(ctx).Order("id").Find(&pieces)
	if result.Error != nil {
		return nil, result.Error
	}

	return pieces, nil
}

// FindAvailable returns active pieces that are for sale and in stock.
func (d *ArtPieceDAO) FindAvailable(ctx context.Context) ([]ArtPiece, error) {
	var pieces []ArtPiece

	result := d.db.WithContext(ctx).
		Where("availability = ? AND is_active AND quantity > 0", "available").
		Order("id").
		Find(&pieces)
	if result.Error != nil {
		return nil, result.Error
	}

	return pieces, nil
}

func (d *ArtPieceDAO) Update(ctx context.Context, piece ArtPiece) (ArtPiece, error) {
	result := d.db.WithContext(ctx).
		Model(&ArtPiece{ID: piece.ID}).
		Select("Title", "Description", "Category", "EstimatedValue", "Availability", "IsActive", "Image", "Quantity", "ArtistID").
		Updates(piece)
	if result.Error != nil {
		return ArtPiece{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ArtPiece{}, ErrArtPieceNotFound
	}

	return d.FindByID(ctx, piece.ID)
}

func (d *ArtPieceDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ArtPiece{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtPieceNotFound
	}

	return nil
}
