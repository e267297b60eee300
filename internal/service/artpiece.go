package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

var ErrArtPieceNotFound = repository.ErrArtPieceNotFound

type ArtPieceRepository interface {
	Create(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error)
	FindByID(ctx context.Context, id uint) (domain.ArtPiece, error)
	FindAll(ctx context.Context) ([]domain.ArtPiece, error)
	FindAvailable(ctx context.Context) ([]domain.ArtPiece, error)
	Update(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error)
	Delete(ctx context.Context, id uint) error
}

type ArtPieceService struct {
	repo       ArtPieceRepository
	artistRepo ArtistRepository
}

func NewArtPieceService(repo ArtPieceRepository, artistRepo ArtistRepository) *ArtPieceService {
	return &ArtPieceService{
		repo:       repo,
		artistRepo: artistRepo,
	}
}

func (s *ArtPieceService) CreateArtPiece(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error) {
	if _, err := s.artistRepo.FindByID(ctx, piece.ArtistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return domain.ArtPiece{}, ErrArtistNotFound
		}

		return domain.ArtPiece{}, fmt.Errorf("s.artistRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, piece)
	if err != nil {
		return domain.ArtPiece{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ArtPieceService) GetArtPiece(ctx context.Context, id uint) (domain.ArtPiece, error) {
	piece, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ArtPiece{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return piece, nil
}

func (s *ArtPieceService) ListArtPieces(ctx context.Context) ([]domain.ArtPiece, error) {
	pieces, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return pieces, nil
}

func (s *ArtPieceService) ListAvailableArtPieces(ctx context.Context) ([]domain.ArtPiece, error) {
	pieces, err := s.repo.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAvailable -> %w", err)
	}

	return pieces, nil
}

func (s *ArtPieceService) UpdateArtPiece(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error) {
	updated, err := s.repo.Update(ctx, piece)
	if err != nil {
		return domain.ArtPiece{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ArtPieceService) DeleteArtPiece(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
