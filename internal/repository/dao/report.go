package dao

import (
	"context"

	"gorm.io/gorm"
)

type ExhibitionRegistrationRow struct {
	ExhibitionID    uint
	ExhibitionTitle string
	Registrations   int
	TotalAttendees  int
}

type ArtAvailabilityRow struct {
	Availability string
	Pieces       int
	TotalStock   int
}

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		db: db,
	}
}

func (d *ReportDAO) ExhibitionRegistrations(ctx context.Context) ([]ExhibitionRegistrationRow, error) {
	var rows []ExhibitionRegistrationRow

	result := d.db.WithContext(ctx).
		Model(&Exhibition{}).
		Select(`exhibitions.id AS exhibition_id,
			exhibitions.title AS exhibition_title,
			COUNT(registrations.id) AS registrations,
			COALESCE(SUM(registrations.attendees), 0) AS total_attendees`).
		Joins("LEFT JOIN registrations ON registrations.exhibition_id = exhibitions.id").
		Group("exhibitions.id, exhibitions.title").
		Order("exhibitions.id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *ReportDAO) ArtAvailability(ctx context.Context) ([]ArtAvailabilityRow, error) {
	var rows []ArtAvailabilityRow

	result := d.db.WithContext(ctx).
		Model(&ArtPiece{}).
		Select("availability, COUNT(id) AS pieces, COALESCE(SUM(quantity), 0) AS total_stock").
		Where("is_active").
		Group("availability").
		Order("availability").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
