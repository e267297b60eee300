package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

type fakeUserRepo struct {
	users map[uint]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]domain.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}

	return repo
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, exists := r.users[id]
	if !exists {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	result := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}

	return result, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user domain.User) (domain.User, error) {
	existing, exists := r.users[user.ID]
	if !exists {
		return domain.User{}, repository.ErrUserNotFound
	}

	for id, other := range r.users {
		if id != user.ID && other.Email == user.Email {
			return domain.User{}, repository.ErrUserEmailExists
		}
	}

	existing.Name = user.Name
	existing.Email = user.Email
	r.users[user.ID] = existing

	return existing, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, exists := r.users[id]; !exists {
		return repository.ErrUserNotFound
	}

	delete(r.users, id)

	return nil
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newFakeUserRepo(domain.User{
		ID:    7,
		Email: "old@example.com",
		Name:  "Old Name",
		Role:  domain.RoleVisitor,
	})
	svc := NewUserService(repo)

	updated, err := svc.UpdateProfile(context.Background(), 7, "New Name", "new@example.com")
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, domain.RoleVisitor, updated.Role, "role must not change through the profile")
}

func TestUserService_UpdateProfileDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(
		domain.User{ID: 7, Email: "seven@example.com", Name: "Seven"},
		domain.User{ID: 8, Email: "eight@example.com", Name: "Eight"},
	)
	svc := NewUserService(repo)

	_, err := svc.UpdateProfile(context.Background(), 7, "Seven", "eight@example.com")
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestUserService_UpdateProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.UpdateProfile(context.Background(), 404, "Name", "user@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteAccount(t *testing.T) {
	repo := newFakeUserRepo(domain.User{ID: 7, Email: "seven@example.com"})
	svc := NewUserService(repo)

	require.NoError(t, svc.DeleteAccount(context.Background(), 7))

	_, err := svc.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserService_DeleteAccountUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.DeleteAccount(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
