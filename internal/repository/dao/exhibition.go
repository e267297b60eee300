package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExhibitionNotFound = errors.New("exhibition not found")
	ErrArtAlreadyAssigned = errors.New("art piece already assigned to this exhibition")
	ErrArtNotAssigned     = errors.New("art piece not assigned to this exhibition")
	ErrArtPieceDisplayed  = errors.New("art piece is already on display")
)

type Exhibition struct {
	ID uint `gorm:"primaryKey"`

	Title    string    `gorm:"not null"`
	Date     time.Time `gorm:"not null"`
	Status   string    `gorm:"not null;default:coming"` // "coming", "ongoing", or "completed"
	Space    int       `gorm:"not null"`                // declared capacity, not enforced on registrations
	Category string    `gorm:"not null"`
	Poster   string
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ExhibitionArt struct {
	ID uint `gorm:"primaryKey"`

	ExhibitionID uint `gorm:"not null;uniqueIndex:uni_exhibition_art"`
	ArtPieceID   uint `gorm:"not null;uniqueIndex:uni_exhibition_art"`

	CreatedAt time.Time
}

type Registration struct {
	ID uint `gorm:"primaryKey"`

	UserID       uint   `gorm:"index;not null"`
	ExhibitionID uint   `gorm:"index;not null"`
	Type         string `gorm:"not null"` // "individual" or "group"
	Attendees    int    `gorm:"not null"`
	Status       string `gorm:"not null;default:confirmed"`

	CreatedAt time.Time
}

type ExhibitionDAO struct {
	db *gorm.DB
}

func NewExhibitionDAO(db *gorm.DB) *ExhibitionDAO {
	return &ExhibitionDAO{
		db: db,
	}
}

func (d *ExhibitionDAO) Insert(ctx context.Context, exhibition Exhibition) (Exhibition, error) {
	result := d.db.WithContext(ctx).Create(&exhibition)
	if result.Error != nil {
		return Exhibition{}, result.Error
	}

	return exhibition, nil
}

func (d *ExhibitionDAO) FindByID(ctx context.Context, id uint) (Exhibition, error) {
	var exhibition Exhibition

	result := d.db.WithContext(ctx).First(&exhibition, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Exhibition{}, ErrExhibitionNotFound
		}

		return Exhibition{}, result.Error
	}

	return exhibition, nil
}

func (d *ExhibitionDAO) FindAll(ctx context.Context) ([]Exhibition, error) {
	var exhibitions []Exhibition

	result := d.db.WithContext(ctx).Order("date").Find(&exhibitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return exhibitions, nil
}

func (d *ExhibitionDAO) Update(ctx context.Context, exhibition Exhibition) (Exhibition, error) {
	result := d.db.WithContext(ctx).
		Model(&Exhibition{ID: exhibition.ID}).
		Select("Title", "Date", "Status", "Space", "Category", "Poster", "Price").
		Updates(exhibition)
	if result.Error != nil {
		return Exhibition{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Exhibition{}, ErrExhibitionNotFound
	}

	return d.FindByID(ctx, exhibition.ID)
}

func (d *ExhibitionDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Exhibition{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExhibitionNotFound
	}

	return nil
}

// AssignArt links an art piece to an exhibition and flips the piece to
// "displayed". The link insert and the availability flip commit together.
func (d *ExhibitionDAO) AssignArt(ctx context.Context, exhibitionID, artPieceID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var piece ArtPiece
		if err := tx.First(&piece, artPieceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtPieceNotFound
			}

			return err
		}
		if piece.Availability == "displayed" {
			return ErrArtPieceDisplayed
		}

		link := ExhibitionArt{ExhibitionID: exhibitionID, ArtPieceID: artPieceID}
		if err := tx.Create(&link).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrArtAlreadyAssigned
			}
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return ErrExhibitionNotFound
			}

			return err
		}

		return tx.Model(&ArtPiece{ID: artPieceID}).
			Update("availability", "displayed").Error
	})
}

// RemoveArt deletes the link and returns the piece to "available".
func (d *ExhibitionDAO) RemoveArt(ctx context.Context, exhibitionID, artPieceID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("exhibition_id = ? AND art_piece_id = ?", exhibitionID, artPieceID).
			Delete(&ExhibitionArt{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrArtNotAssigned
		}

		return tx.Model(&ArtPiece{ID: artPieceID}).
			Update("availability", "available").Error
	})
}

func (d *ExhibitionDAO) FindArt(ctx context.Context, exhibitionID uint) ([]ArtPiece, error) {
	var pieces []ArtPiece

	result := d.db.WithContext(ctx).
		Joins("JOIN exhibition_arts ON exhibition_arts.art_piece_id = art_pieces.id").
		Where("exhibition_arts.exhibition_id = ?", exhibitionID).
		Order("art_pieces.id").
		Find(&pieces)
	if result.Error != nil {
		return nil, result.Error
	}

	return pieces, nil
}

func (d *ExhibitionDAO) InsertRegistration(ctx context.Context, registration Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *ExhibitionDAO) FindAllRegistrations(ctx context.Context) ([]Registration, error) {
	var registrations []Registration

	result := d.db.WithContext(ctx).Order("id").Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}
