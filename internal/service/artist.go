package service

import (
	"context"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

var ErrArtistNotFound = repository.ErrArtistNotFound

type ArtistRepository interface {
	Create(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	FindByID(ctx context.Context, id uint) (domain.Artist, error)
	FindAll(ctx context.Context) ([]domain.Artist, error)
	Update(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	Delete(ctx context.Context, id uint) error
}

type ArtistService struct {
	repo ArtistRepository
}

func NewArtistService(repo ArtistRepository) *ArtistService {
	return &ArtistService{
		repo: repo,
	}
}

func (s *ArtistService) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	created, err := s.repo.Create(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ArtistService) GetArtist(ctx context.Context, id uint) (domain.Artist, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return artist, nil
}

func (s *ArtistService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return artists, nil
}

func (s *ArtistService) UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	updated, err := s.repo.Update(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ArtistService) DeleteArtist(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
