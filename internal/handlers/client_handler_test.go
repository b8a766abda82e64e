package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

func TestClientListUserNotFound(t *testing.T) {
	h := NewClientHandler(guardUserMissing(), &mockClientStore{}, &recordingAudit{})

	c, w := testContext(http.MethodGet, "")
	setParams(c, "userId", "missing")

	h.List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"user_not_found","message":"Usuário não encontrado"}`, w.Body.String())
}

func TestClientListUserNotValidated(t *testing.T) {
	h := NewClientHandler(guardUserInvalid(), &mockClientStore{}, &recordingAudit{})

	c, w := testContext(http.MethodGet, "")
	setParams(c, "userId", "u1")

	h.List(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"code":"user_not_validated","message":"Usuário não validado"}`, w.Body.String())
}

func TestClientList(t *testing.T) {
	clients := &mockClientStore{
		listByUser: func(ctx context.Context, userID string) ([]models.Client, error) {
			return []models.Client{
				{ID: "c1", UserID: userID, Name: "Ana", Status: models.ClientStatusActive},
				{ID: "c2", UserID: userID, Name: "Bruno", Status: models.ClientStatusInactive},
			}, nil
		},
	}
	h := NewClientHandler(guardAllowing(), clients, &recordingAudit{})

	c, w := testContext(http.MethodGet, "")
	setParams(c, "userId", "u1")

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestClientGetNotFound(t *testing.T) {
	clients := &mockClientStore{
		findByID: func(ctx context.Context, userID, clientID string) (*models.Client, error) {
			return nil, store.ErrNotFound
		},
	}
	h := NewClientHandler(guardAllowing(), clients, &recordingAudit{})

	c, w := testContext(http.MethodGet, "")
	setParams(c, "userId", "u1", "clientId", "missing")

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"client_not_found","message":"Cliente não encontrado"}`, w.Body.String())
}

func TestClientCreate(t *testing.T) {
	var created *models.Client
	clients := &mockClientStore{
		create: func(ctx context.Context, client *models.Client) error {
			client.ID = "c1"
			created = client
			return nil
		},
	}
	rec := &recordingAudit{}
	h := NewClientHandler(guardAllowing(), clients, rec)

	c, w := testContext(http.MethodPost, `{
		"name": "Ana",
		"status": "active",
		"email": "ana@example.com"
	}`)
	setParams(c, "userId", "u1")

	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "Ana", created.Name)
	require.NotNil(t, created.Email)
	assert.Equal(t, "ana@example.com", *created.Email)
	assert.Nil(t, created.Phone)
	assert.Equal(t, "client_created", rec.lastAction(t))
}

func TestClientCreateInvalidStatus(t *testing.T) {
	h := NewClientHandler(guardAllowing(), &mockClientStore{}, &recordingAudit{})

	c, w := testContext(http.MethodPost, `{"name": "Ana", "status": "archived"}`)
	setParams(c, "userId", "u1")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":"invalid_request","message":"Todos os campos são obrigatórios"}`, w.Body.String())
}

// Update substitui o registro inteiro: um opcional omitido no corpo limpa o
// valor que estava gravado.
func TestClientUpdateClearsOmittedOptionals(t *testing.T) {
	email := "ana@example.com"
	phone := "11 99999-0000"

	var updated *models.Client
	clients := &mockClientStore{
		findByID: func(ctx context.Context, userID, clientID string) (*models.Client, error) {
			return &models.Client{
				ID:     clientID,
				UserID: userID,
				Name:   "Ana",
				Status: models.ClientStatusActive,
				Email:  &email,
				Phone:  &phone,
			}, nil
		},
		update: func(ctx context.Context, client *models.Client) error {
			updated = client
			return nil
		},
	}
	rec := &recordingAudit{}
	h := NewClientHandler(guardAllowing(), clients, rec)

	c, w := testContext(http.MethodPut, `{"name": "Ana Maria", "status": "inactive"}`)
	setParams(c, "userId", "u1", "clientId", "c1")

	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updated)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, models.ClientStatusInactive, updated.Status)
	assert.Nil(t, updated.Email)
	assert.Nil(t, updated.Phone)
	assert.Equal(t, "client_updated", rec.lastAction(t))
}

func TestClientDelete(t *testing.T) {
	clients := &mockClientStore{
		delete: func(ctx context.Context, userID, clientID string) error {
			return nil
		},
	}
	rec := &recordingAudit{}
	h := NewClientHandler(guardAllowing(), clients, rec)

	c, w := testContext(http.MethodDelete, "")
	setParams(c, "userId", "u1", "clientId", "c1")

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "client_deleted", rec.lastAction(t))
}

func TestClientDeleteNotFound(t *testing.T) {
	clients := &mockClientStore{
		delete: func(ctx context.Context, userID, clientID string) error {
			return store.ErrNotFound
		},
	}
	rec := &recordingAudit{}
	h := NewClientHandler(guardAllowing(), clients, rec)

	c, w := testContext(http.MethodDelete, "")
	setParams(c, "userId", "u1", "clientId", "missing")

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, rec.events)
}
