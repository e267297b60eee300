package repository

import (
	"context"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository/dao"
)

type ReportDAO interface {
	ExhibitionRegistrations(ctx context.Context) ([]dao.ExhibitionRegistrationRow, error)
	ArtAvailability(ctx context.Context) ([]dao.ArtAvailabilityRow, error)
}

type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

func (r *ReportRepository) ExhibitionRegistrations(ctx context.Context) ([]domain.ExhibitionRegistrationReport, error) {
	rows, err := r.dao.ExhibitionRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ExhibitionRegistrations -> %w", err)
	}

	reports := make([]domain.ExhibitionRegistrationReport, len(rows))
	for i, row := range rows {
		reports[i] = domain.ExhibitionRegistrationReport{
			ExhibitionID:    row.ExhibitionID,
			ExhibitionTitle: row.ExhibitionTitle,
			Registrations:   row.Registrations,
			TotalAttendees:  row.TotalAttendees,
		}
	}

	return reports, nil
}

func (r *ReportRepository) ArtAvailability(ctx context.Context) ([]domain.ArtAvailabilityReport, error) {
	rows, err := r.dao.ArtAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ArtAvailability -> %w", err)
	}

	reports := make([]domain.ArtAvailabilityReport, len(rows))
	for i, row := range rows {
		reports[i] = domain.ArtAvailabilityReport{
			Availability: row.Availability,
			Pieces:       row.Pieces,
			TotalStock:   row.TotalStock,
		}
	}

	return reports, nil
}
