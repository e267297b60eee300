package repository

import (
	"context"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository/dao"
)

var ErrArtistNotFound = dao.ErrArtistNotFound

type ArtistDAO interface {
	Insert(ctx context.Context, artist dao.Artist) (dao.Artist, error)
	FindByID(ctx context.Context, id uint) (dao.Artist, error)
	FindAll(ctx context.Context) ([]dao.Artist, error)
	Update(ctx context.Context, artist dao.Artist) (dao.Artist, error)
	Delete(ctx context.Context, id uint) error
}

type ArtistRepository struct {
	dao ArtistDAO
}

func NewArtistRepository(dao ArtistDAO) *ArtistRepository {
	return &ArtistRepository{
		dao: dao,
	}
}

func (r *ArtistRepository) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(artist))
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ArtistRepository) FindByID(ctx context.Context, id uint) (domain.Artist, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ArtistRepository) FindAll(ctx context.Context) ([]domain.Artist, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	artists := make([]domain.Artist, len(found))
	for i, a := range found {
		artists[i] = r.daoToDomain(a)
	}

	return artists, nil
}

func (r *ArtistRepository) Update(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(artist))
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ArtistRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ArtistRepository) domainToDao(a domain.Artist) dao.Artist {
	return dao.Artist{
		ID:        a.ID,
		IDNumber:  a.IDNumber,
		FirstName: a.FirstName,
		Surname:   a.Surname,
		IsActive:  a.IsActive,
	}
}

func (r *ArtistRepository) daoToDomain(a dao.Artist) domain.Artist {
	return domain.Artist{
		ID:        a.ID,
		IDNumber:  a.IDNumber,
		FirstName: a.FirstName,
		Surname:   a.Surname,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
