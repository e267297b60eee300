package repository

import (
	"context"
	"fmt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository/dao"
)

var (
	ErrExhibitionNotFound = dao.ErrExhibitionNotFound
	ErrArtAlreadyAssigned = dao.ErrArtAlreadyAssigned
	ErrArtNotAssigned     = dao.ErrArtNotAssigned
	ErrArtPieceDisplayed  = dao.ErrArtPieceDisplayed
)

type ExhibitionDAO interface {
	Insert(ctx context.Context, exhibition dao.Exhibition) (dao.Exhibition, error)
	FindByID(ctx context.Context, id uint) (dao.Exhibition, error)
	FindAll(ctx context.Context) ([]dao.Exhibition, error)
	Update(ctx context.Context, exhibition dao.Exhibition) (dao.Exhibition, error)
	Delete(ctx context.Context, id uint) error
	AssignArt(ctx context.Context, exhibitionID, artPieceID uint) error
	RemoveArt(ctx context.Context, exhibitionID, artPieceID uint) error
	FindArt(ctx context.Context, exhibitionID uint) ([]dao.ArtPiece, error)
	InsertRegistration(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	FindAllRegistrations(ctx context.Context) ([]dao.Registration, error)
}

type ExhibitionRepository struct {
	dao ExhibitionDAO
}

func NewExhibitionRepository(dao ExhibitionDAO) *ExhibitionRepository {
	return &ExhibitionRepository{
		dao: dao,
	}
}

func (r *ExhibitionRepository) Create(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(exhibition))
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ExhibitionRepository) FindByID(ctx context.Context, id uint) (domain.Exhibition, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ExhibitionRepository) FindAll(ctx context.Context) ([]domain.Exhibition, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	exhibitions := make([]domain.Exhibition, len(found))
	for i, e := range found {
		exhibitions[i] = r.daoToDomain(e)
	}

	return exhibitions, nil
}

func (r *ExhibitionRepository) Update(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(exhibition))
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ExhibitionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ExhibitionRepository) AssignArt(ctx context.Context, exhibitionID, artPieceID uint) error {
	if err := r.dao.AssignArt(ctx, exhibitionID, artPieceID); err != nil {
		return fmt.Errorf("r.dao.AssignArt -> %w", err)
	}

	return nil
}

func (r *ExhibitionRepository) RemoveArt(ctx context.Context, exhibitionID, artPieceID uint) error {
	if err := r.dao.RemoveArt(ctx, exhibitionID, artPieceID); err != nil {
		return fmt.Errorf("r.dao.RemoveArt -> %w", err)
	}

	return nil
}

func (r *ExhibitionRepository) FindArt(ctx context.Context, exhibitionID uint) ([]domain.ArtPiece, error) {
	found, err := r.dao.FindArt(ctx, exhibitionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindArt -> %w", err)
	}

	pieces := make([]domain.ArtPiece, len(found))
	for i, p := range found {
		pieces[i] = domain.ArtPiece{
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

	return pieces, nil
}

func (r *ExhibitionRepository) CreateRegistration(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.InsertRegistration(ctx, dao.Registration{
		UserID:       registration.UserID,
		ExhibitionID: registration.ExhibitionID,
		Type:         registration.Type,
		Attendees:    registration.Attendees,
		Status:       "confirmed",
	})
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.InsertRegistration -> %w", err)
	}

	return r.registrationDaoToDomain(created), nil
}

func (r *ExhibitionRepository) FindAllRegistrations(ctx context.Context) ([]domain.Registration, error) {
	found, err := r.dao.FindAllRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllRegistrations -> %w", err)
	}

	registrations := make([]domain.Registration, len(found))
	for i, reg := range found {
		registrations[i] = r.registrationDaoToDomain(reg)
	}

	return registrations, nil
}

func (r *ExhibitionRepository) domainToDao(e domain.Exhibition) dao.Exhibition {
	return dao.Exhibition{
		ID:       e.ID,
		Title:    e.Title,
		Date:     e.Date,
		Status:   e.Status,
		Space:    e.Space,
		Category: e.Category,
		Poster:   e.Poster,
		Price:    e.Price,
	}
}

func (r *ExhibitionRepository) daoToDomain(e dao.Exhibition) domain.Exhibition {
	return domain.Exhibition{
		ID:        e.ID,
		Title:     e.Title,
		Date:      e.Date,
		Status:    e.Status,
		Space:     e.Space,
		Category:  e.Category,
		Poster:    e.Poster,
		Price:     e.Price,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (r *ExhibitionRepository) registrationDaoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:           reg.ID,
		UserID:       reg.UserID,
		ExhibitionID: reg.ExhibitionID,
		Type:         reg.Type,
		Attendees:    reg.Attendees,
		Status:       reg.Status,
		CreatedAt:    reg.CreatedAt,
	}
}
