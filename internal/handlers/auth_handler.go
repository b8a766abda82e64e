package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/agendafacil/agenda-api/internal/config"
	"github.com/agendafacil/agenda-api/internal/httperr"
	"github.com/agendafacil/agenda-api/internal/httpresp"
	"github.com/agendafacil/agenda-api/internal/store"
)

type AuthHandler struct {
	users  store.UserStore
	config *config.Config
}

func NewAuthHandler(users store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Token    string `json:"token"`
}

// --------- Handlers ---------

// Login autentica por e-mail e senha. A resposta carrega o id do usuário,
// que as demais rotas recebem como dono no path, e um token adicional para
// quando AUTH_REQUIRED estiver ligado.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "E-mail e senha são obrigatórios")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Unauthorized(c, "user_not_found", "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao efetuar login")
		return
	}

	if !user.Valid {
		httperr.Unauthorized(c, "user_not_validated", "Usuário não validado")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_password", "Senha inválida")
		return
	}

	token, err := h.generateToken(user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao efetuar login")
		return
	}

	httpresp.OK(c, LoginResponse{
		UserID:   user.ID,
		UserName: user.Name,
		Token:    token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
