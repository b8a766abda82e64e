package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

// Mocks com embedding da interface: só os métodos usados pelo guard são
// implementados.

type mockUserStore struct {
	store.UserStore
	findByID func(ctx context.Context, id string) (*models.User, error)
}

func (m *mockUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return m.findByID(ctx, id)
}

type mockProfessionalStore struct {
	store.ProfessionalStore
	get func(ctx context.Context, id string) (*models.Professional, error)
}

func (m *mockProfessionalStore) Get(ctx context.Context, id string) (*models.Professional, error) {
	return m.get(ctx, id)
}

func TestAuthorizeUserNotFound(t *testing.T) {
	g := New(&mockUserStore{
		findByID: func(ctx context.Context, id string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	}, nil)

	_, err := g.AuthorizeUser(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestAuthorizeUserInvalid(t *testing.T) {
	g := New(&mockUserStore{
		findByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Valid: false}, nil
		},
	}, nil)

	_, err := g.AuthorizeUser(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrOwnerInvalid)
}

func TestAuthorizeUserValid(t *testing.T) {
	g := New(&mockUserStore{
		findByID: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: "Maria", Valid: true}, nil
		},
	}, nil)

	user, err := g.AuthorizeUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthorizeUserStoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	g := New(&mockUserStore{
		findByID: func(ctx context.Context, id string) (*models.User, error) {
			return nil, boom
		},
	}, nil)

	_, err := g.AuthorizeUser(context.Background(), "u1")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrOwnerNotFound)
}

func TestAuthorizeProfessionalNotFound(t *testing.T) {
	g := New(nil, &mockProfessionalStore{
		get: func(ctx context.Context, id string) (*models.Professional, error) {
			return nil, store.ErrNotFound
		},
	})

	_, err := g.AuthorizeProfessional(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestAuthorizeProfessionalWithoutOwnerIsInvalid(t *testing.T) {
	g := New(nil, &mockProfessionalStore{
		get: func(ctx context.Context, id string) (*models.Professional, error) {
			return &models.Professional{ID: id}, nil
		},
	})

	_, err := g.AuthorizeProfessional(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrOwnerInvalid)
}

func TestAuthorizeProfessionalValid(t *testing.T) {
	g := New(nil, &mockProfessionalStore{
		get: func(ctx context.Context, id string) (*models.Professional, error) {
			return &models.Professional{ID: id, UserID: "u1"}, nil
		},
	})

	professional, err := g.AuthorizeProfessional(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "u1", professional.UserID)
}
