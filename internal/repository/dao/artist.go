package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrArtistNotFound = errors.New("artist not found")

type Artist struct {
	ID uint `gorm:"primaryKey"`

	IDNumber  string `gorm:"uniqueIndex;not null"`
	FirstName string `gorm:"not null"`
	Surname   string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ArtistDAO struct {
	db *gorm.DB
}

func NewArtistDAO(db *gorm.DB) *ArtistDAO {
	return &ArtistDAO{
		db: db,
	}
}

func (d *ArtistDAO) Insert(ctx context.Context, artist Artist) (Artist, error) {
	result := d.db.WithContext(ctx).Create(&artist)
	if result.Error != nil {
		return Artist{}, result.Error
	}

	return artist, nil
}

func (d *ArtistDAO) FindByID(ctx context.Context, id uint) (Artist, error) {
	var artist Artist

	result := d.db.WithContext(ctx).First(&artist, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Artist{}, ErrArtistNotFound
		}

		return Artist{}, result.Error
	}

	return artist, nil
}

func (d *ArtistDAO) FindAll(ctx context.Context) ([]Artist, error) {
	var artists []Artist

	result := d.db.WithContext(ctx).Order("id").Find(&artists)
	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (d *ArtistDAO) Update(ctx context.Context, artist Artist) (Artist, error) {
	result := d.db.WithContext(ctx).
		Model(&Artist{ID: artist.ID}).
		Select("IDNumber", "FirstName", "Surname", "IsActive").
		Updates(artist)
	if result.Error != nil {
		return Artist{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Artist{}, ErrArtistNotFound
	}

	return d.FindByID(ctx, artist.ID)
}

func (d *ArtistDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Artist{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArtistNotFound
	}

	return nil
}
