package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/agendafacil/agenda-api/internal/config"
	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
)

const testSecret = "segredo-de-teste"

func authHandler(users store.UserStore) *AuthHandler {
	return NewAuthHandler(users, &config.Config{JWTSecret: testSecret})
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestLoginUserNotFound(t *testing.T) {
	h := authHandler(&mockUserStore{
		findByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	})

	c, w := testContext(http.MethodPost, `{"email": "ninguem@example.com", "password": "123456"}`)

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"code":"user_not_found","message":"Usuário não encontrado"}`, w.Body.String())
}

func TestLoginUserNotValidated(t *testing.T) {
	h := authHandler(&mockUserStore{
		findByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "u1", Email: email, Valid: false}, nil
		},
	})

	c, w := testContext(http.MethodPost, `{"email": "maria@example.com", "password": "123456"}`)

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"code":"user_not_validated","message":"Usuário não validado"}`, w.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	hash := hashPassword(t, "senha-certa")
	h := authHandler(&mockUserStore{
		findByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "u1", Email: email, PasswordHash: hash, Valid: true}, nil
		},
	})

	c, w := testContext(http.MethodPost, `{"email": "maria@example.com", "password": "senha-errada"}`)

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"code":"invalid_password","message":"Senha inválida"}`, w.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	h := authHandler(&mockUserStore{})

	c, w := testContext(http.MethodPost, `{"email": "maria@example.com"}`)

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	hash := hashPassword(t, "123456")

	var requestedEmail string
	h := authHandler(&mockUserStore{
		findByEmail: func(ctx context.Context, email string) (*models.User, error) {
			requestedEmail = email
			return &models.User{ID: "u1", Name: "Maria", Email: email, PasswordHash: hash, Valid: true}, nil
		},
	})

	c, w := testContext(http.MethodPost, `{"email": "Maria@Example.com", "password": "123456"}`)

	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maria@example.com", requestedEmail)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "Maria", resp.UserName)
	require.NotEmpty(t, resp.Token)

	// O token emitido carrega o id do usuário e assina com o segredo ativo.
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "u1", claims["sub"])
}
