package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

var (
	ErrExhibitionNotFound = repository.ErrExhibitionNotFound
	ErrArtAlreadyAssigned = repository.ErrArtAlreadyAssigned
	ErrArtNotAssigned     = repository.ErrArtNotAssigned
	ErrArtPieceDisplayed  = repository.ErrArtPieceDisplayed

	ErrInvalidAttendees = errors.New("attendee count does not match registration type")
)

type ExhibitionRepository interface {
	Create(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error)
	FindByID(ctx context.Context, id uint) (domain.Exhibition, error)
	FindAll(ctx context.Context) ([]domain.Exhibition, error)
	Update(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error)
	Delete(ctx context.Context, id uint) error
	AssignArt(ctx context.Context, exhibitionID, artPieceID uint) error
	RemoveArt(ctx context.Context, exhibitionID, artPieceID uint) error
	FindArt(ctx context.Context, exhibitionID uint) ([]domain.ArtPiece, error)
	CreateRegistration(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	FindAllRegistrations(ctx context.Context) ([]domain.Registration, error)
}

type ExhibitionService struct {
	repo ExhibitionRepository
}

func NewExhibitionService(repo ExhibitionRepository) *ExhibitionService {
	return &ExhibitionService{
		repo: repo,
	}
}

func (s *ExhibitionService) CreateExhibition(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	if exhibition.Status == "" {
		exhibition.Status = domain.ExhibitionComing
	}

	created, err := s.repo.Create(ctx, exhibition)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ExhibitionService) GetExhibition(ctx context.Context, id uint) (domain.Exhibition, error) {
	exhibition, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return exhibition, nil
}

func (s *ExhibitionService) ListExhibitions(ctx context.Context) ([]domain.Exhibition, error) {
	exhibitions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return exhibitions, nil
}

func (s *ExhibitionService) UpdateExhibition(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	updated, err := s.repo.Update(ctx, exhibition)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ExhibitionService) DeleteExhibition(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ExhibitionService) AssignArt(ctx context.Context, exhibitionID, artPieceID uint) error {
	if _, err := s.repo.FindByID(ctx, exhibitionID); err != nil {
		if errors.Is(err, repository.ErrExhibitionNotFound) {
			return ErrExhibitionNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.AssignArt(ctx, exhibitionID, artPieceID); err != nil {
		return fmt.Errorf("s.repo.AssignArt -> %w", err)
	}

	return nil
}

func (s *ExhibitionService) RemoveArt(ctx context.Context, exhibitionID, artPieceID uint) error {
	if err := s.repo.RemoveArt(ctx, exhibitionID, artPieceID); err != nil {
		return fmt.Errorf("s.repo.RemoveArt -> %w", err)
	}

	return nil
}

func (s *ExhibitionService) ListExhibitionArt(ctx context.Context, exhibitionID uint) ([]domain.ArtPiece, error) {
	if _, err := s.repo.FindByID(ctx, exhibitionID); err != nil {
		if errors.Is(err, repository.ErrExhibitionNotFound) {
			return nil, ErrExhibitionNotFound
		}

		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	pieces, err := s.repo.FindArt(ctx, exhibitionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindArt -> %w", err)
	}

	return pieces, nil
}

// Register records an attendance for an exhibition. Individual registrations
// carry exactly one attendee, group registrations at least two. Declared
// exhibition space is not checked against the attendee count.
func (s *ExhibitionService) Register(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	switch registration.Type {
	case domain.RegistrationIndividual:
		if registration.Attendees != 1 {
			return domain.Registration{}, ErrInvalidAttendees
		}
	case domain.RegistrationGroup:
		if registration.Attendees < 2 {
			return domain.Registration{}, ErrInvalidAttendees
		}
	default:
		return domain.Registration{}, ErrInvalidAttendees
	}

	if _, err := s.repo.FindByID(ctx, registration.ExhibitionID); err != nil {
		if errors.Is(err, repository.ErrExhibitionNotFound) {
			return domain.Registration{}, ErrExhibitionNotFound
		}

		return domain.Registration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateRegistration(ctx, registration)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.CreateRegistration -> %w", err)
	}

	return created, nil
}

func (s *ExhibitionService) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	registrations, err := s.repo.FindAllRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllRegistrations -> %w", err)
	}

	return registrations, nil
}
