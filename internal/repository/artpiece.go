package repository

import (
	"context"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository/dao"
)

var ErrArtPieceNotFound = dao.ErrArtPieceNotFound

type ArtPieceDAO interface {
	Insert(ctx context.Context, piece dao.ArtPiece) (dao.ArtPiece, error)
	FindByID(ctx context.Context, id uint) (dao.ArtPiece, error)
	FindAll(ctx context.Context) ([]dao.ArtPiece, error)
	FindAvailable(ctx context.Context) ([]dao.ArtPiece, error)
	Update(ctx context.Context, piece dao.ArtPiece) (dao.ArtPiece, error)
	Delete(ctx context.Context, id uint) error
}

type ArtPieceRepository struct {
	dao ArtPieceDAO
}

func NewArtPieceRepository(dao ArtPieceDAO) *ArtPieceRepository {
	return &ArtPieceRepository{
		dao: dao,
	}
}

func (r *ArtPieceRepository) Create(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(piece))
	if err != nil {
		return domain.ArtPiece{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ArtPieceRepository) FindByID(ctx context.Context, id uint) (domain.ArtPiece, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.ArtPiece{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ArtPieceRepository) FindAll(ctx context.Context) ([]domain.ArtPiece, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ArtPieceRepository) FindAvailable(ctx context.Context) ([]domain.ArtPiece, error) {
	found, err := r.dao.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAvailable -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ArtPieceRepository) Update(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(piece))
	if err != nil {
		return domain.ArtPiece{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ArtPieceRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ArtPieceRepository) domainToDao(p domain.ArtPiece) dao.ArtPiece {
	return dao.ArtPiece{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		EstimatedValue: p.EstimatedValue,
		Availability:   p.Availability,
		IsActive:       p.IsActive,
		Image:          p.Image,
		Quantity:       p.Quantity,
		ArtistID:       p.ArtistID,
	}
}

func (r *ArtPieceRepository) daoToDomain(p dao.ArtPiece) domain.ArtPiece {
	return domain.ArtPiece{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		EstimatedValue: p.EstimatedValue,
		Availability:   p.Availability,
		IsActive:       p.IsActive,
		Image:          p.Image,
		Quantity:       p.Quantity,
		ArtistID:       p.ArtistID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *ArtPieceRepository) daosToDomain(pieces []dao.ArtPiece) []domain.ArtPiece {
	result := make([]domain.ArtPiece, len(pieces))
	for i, p := range pieces {
		result[i] = r.daoToDomain(p)
	}

	return result
}
