package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

type fakeExhibitionRepo struct {
	exhibitions   map[uint]domain.Exhibition
	registrations []domain.Registration
	nextID        uint
}

func newFakeExhibitionRepo() *fakeExhibitionRepo {
	return &fakeExhibitionRepo{
		exhibitions: map[uint]domain.Exhibition{},
		nextID:      1,
	}
}

func (r *fakeExhibitionRepo) Create(_ context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	exhibition.ID = r.nextID
	r.nextID++
	r.exhibitions[exhibition.ID] = exhibition

	return exhibition, nil
}

func (r *fakeExhibitionRepo) FindByID(_ context.Context, id uint) (domain.Exhibition, error) {
	exhibition, exists := r.exhibitions[id]
	if !exists {
		return domain.Exhibition{}, repository.ErrExhibitionNotFound
	}

	return exhibition, nil
}

func (r *fakeExhibitionRepo) FindAll(_ context.Context) ([]domain.Exhibition, error) {
	result := make([]domain.Exhibition, 0, len(r.exhibitions))
	for _, e := range r.exhibitions {
		result = append(result, e)
	}

	return result, nil
}

func (r *fakeExhibitionRepo) Update(_ context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	if _, exists := r.exhibitions[exhibition.ID]; !exists {
		return domain.Exhibition{}, repository.ErrExhibitionNotFound
	}
	r.exhibitions[exhibition.ID] = exhibition

	return exhibition, nil
}

func (r *fakeExhibitionRepo) Delete(_ context.Context, id uint) error {
	if _, exists := r.exhibitions[id]; !exists {
		return repository.ErrExhibitionNotFound
	}
	delete(r.exhibitions, id)

	return nil
}

func (r *fakeExhibitionRepo) AssignArt(_ context.Context, _, _ uint) error { return nil }
func (r *fakeExhibitionRepo) RemoveArt(_ context.Context, _, _ uint) error { return nil }

func (r *fakeExhibitionRepo) FindArt(_ context.Context, _ uint) ([]domain.ArtPiece, error) {
	return nil, nil
}

func (r *fakeExhibitionRepo) CreateRegistration(_ context.Context, registration domain.Registration) (domain.Registration, error) {
	registration.ID = uint(len(r.registrations) + 1)
	registration.Status = "confirmed"
	r.registrations = append(r.registrations, registration)

	return registration, nil
}

func (r *fakeExhibitionRepo) FindAllRegistrations(_ context.Context) ([]domain.Registration, error) {
	return r.registrations, nil
}

func seedExhibition(t *testing.T, repo *fakeExhibitionRepo) domain.Exhibition {
	t.Helper()

	exhibition, err := repo.Create(context.Background(), domain.Exhibition{
		Title:    "Modern Light",
		Date:     time.Now().Add(48 * time.Hour),
		Status:   domain.ExhibitionComing,
		Space:    80,
		Category: "Photography",
		Price:    decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	return exhibition
}

func TestExhibitionService_Register(t *testing.T) {
	tests := []struct {
		name      string
		regType   string
		attendees int
		wantErr   error
	}{
		{name: "individual with one attendee", regType: domain.RegistrationIndividual, attendees: 1},
		{name: "individual with two attendees", regType: domain.RegistrationIndividual, attendees: 2, wantErr: ErrInvalidAttendees},
		{name: "group with two attendees", regType: domain.RegistrationGroup, attendees: 2},
		{name: "group with ten attendees", regType: domain.RegistrationGroup, attendees: 10},
		{name: "group with one attendee", regType: domain.RegistrationGroup, attendees: 1, wantErr: ErrInvalidAttendees},
		{name: "unknown type", regType: "family", attendees: 3, wantErr: ErrInvalidAttendees},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeExhibitionRepo()
			exhibition := seedExhibition(t, repo)
			svc := NewExhibitionService(repo)

			created, err := svc.Register(context.Background(), domain.Registration{
				UserID:       7,
				ExhibitionID: exhibition.ID,
				Type:         tt.regType,
				Attendees:    tt.attendees,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.registrations)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "confirmed", created.Status)
			assert.Equal(t, tt.attendees, created.Attendees)
		})
	}
}

func TestExhibitionService_RegisterUnknownExhibition(t *testing.T) {
	repo := newFakeExhibitionRepo()
	svc := NewExhibitionService(repo)

	_, err := svc.Register(context.Background(), domain.Registration{
		UserID:       7,
		ExhibitionID: 999,
		Type:         domain.RegistrationIndividual,
		Attendees:    1,
	})

	assert.ErrorIs(t, err, ErrExhibitionNotFound)
}

func TestExhibitionService_CreateDefaultsStatus(t *testing.T) {
	repo := newFakeExhibitionRepo()
	svc := NewExhibitionService(repo)

	created, err := svc.CreateExhibition(context.Background(), domain.Exhibition{
		Title:    "Untitled",
		Date:     time.Now(),
		Space:    10,
		Category: "Nature",
		Price:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ExhibitionComing, created.Status)
}

func TestExhibitionService_AssignArtUnknownExhibition(t *testing.T) {
	repo := newFakeExhibitionRepo()
	svc := NewExhibitionService(repo)

	err := svc.AssignArt(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrExhibitionNotFound)
}
