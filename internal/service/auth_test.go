package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
)

type fakeAuthUserRepo struct {
	users  map[string]domain.User
	nextID uint
}

func newFakeAuthUserRepo() *fakeAuthUserRepo {
	return &fakeAuthUserRepo{
		users:  map[string]domain.User{},
		nextID: 1,
	}
}

func (r *fakeAuthUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user

	return user, nil
}

func (r *fakeAuthUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, exists := r.users[email]
	if !exists {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "visitor@example.com",
		Password: "password1",
		Name:     "Visitor",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleVisitor, created.Role)
	assert.NotEqual(t, "password1", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password1")))
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "dup@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "dup@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "login@example.com", Password: "password1"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "login@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, "login@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "login@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "password1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
