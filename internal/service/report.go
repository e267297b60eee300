package service

import (
	"context"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
)

type ReportRepository interface {
	ExhibitionRegistrations(ctx context.Context) ([]domain.ExhibitionRegistrationReport, error)
	ArtAvailability(ctx context.Context) ([]domain.ArtAvailabilityReport, error)
}

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

func (s *ReportService) ExhibitionRegistrations(ctx context.Context) ([]domain.ExhibitionRegistrationReport, error) {
	reports, err := s.repo.ExhibitionRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ExhibitionRegistrations -> %w", err)
	}

	return reports, nil
}

func (s *ReportService) ArtAvailability(ctx context.Context) ([]domain.ArtAvailabilityReport, error) {
	reports, err := s.repo.ArtAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ArtAvailability -> %w", err)
	}

	return reports, nil
}
