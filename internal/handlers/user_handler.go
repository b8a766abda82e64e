package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/agendafacil/agenda-api/internal/audit"
	"github.com/agendafacil/agenda-api/internal/httperr"
	"github.com/agendafacil/agenda-api/internal/httpresp"
	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"
	"github.com/agendafacil/agenda-api/internal/validators"
)

type UserHandler struct {
	users store.UserStore
	audit audit.Recorder
}

func NewUserHandler(users store.UserStore, auditDispatcher audit.Recorder) *UserHandler {
	return &UserHandler{users: users, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	// required rejeita valid ausente ou false: cadastro nunca cria uma
	// conta que não consegue logar.
	Valid bool `json:"valid" binding:"required"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Valid    bool   `json:"valid"`
}

type UpdateUserDataRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao buscar usuários")
		return
	}

	httpresp.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar usuário")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido")
		return
	}

	if _, err := h.users.FindByEmail(c.Request.Context(), email); err == nil {
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Valid:        req.Valid,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao atualizar usuário")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar usuário")
		return
	}

	user.Name = req.Name
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.PasswordHash = string(hashed)
	user.Valid = req.Valid

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, user)
}

// UpdateData altera apenas nome e e-mail, preservando credenciais e status.
func (h *UserHandler) UpdateData(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e e-mail são obrigatórios")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao atualizar usuário")
		return
	}

	user.Name = req.Name
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	id := c.Param("id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao atualizar senha")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		httperr.BadRequest(c, "old_password_mismatch", "A senha antiga não confere")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar senha")
		return
	}

	user.PasswordHash = string(hashed)

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar senha")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_password_changed",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, user)
}

func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id := c.Param("id")

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao atualizar status do usuário")
		return
	}

	user.Valid = !user.Valid

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar status do usuário")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_status_toggled",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_delete_user", "Erro ao deletar usuário")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}
