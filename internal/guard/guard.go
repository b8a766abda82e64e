package guard

import (
	"context"
	"errors"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

var (
	// ErrOwnerNotFound indica que o dono informado na rota não existe.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrOwnerInvalid indica que o dono existe mas não está validado.
	ErrOwnerInvalid = errors.New("owner not validated")
)

// Guard confere a existência e a validade do dono antes de qualquer operação
// sensível. O resultado nunca é cacheado entre requisições.
type Guard struct {
	users         store.UserStore
	professionals store.ProfessionalStore
}

func New(users store.UserStore, professionals store.ProfessionalStore) *Guard {
	return &Guard{users: users, professionals: professionals}
}

func (g *Guard) AuthorizeUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := g.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.Valid {
		return nil, ErrOwnerInvalid
	}
	return user, nil
}

// AuthorizeProfessional é o guard da variante de horários, em que o dono da
// rota é o profissional. Um profissional sem usuário vinculado é rejeitado.
func (g *Guard) AuthorizeProfessional(ctx context.Context, professionalID string) (*models.Professional, error) {
	professional, err := g.professionals.Get(ctx, professionalID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	if professional.UserID == "" {
		return nil, ErrOwnerInvalid
	}
	return professional, nil
}
