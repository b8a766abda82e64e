package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendafacil/agenda-api/internal/audit"
	"github.com/agendafacil/agenda-api/internal/httperr"
	"github.com/agendafacil/agenda-api/internal/httpresp"
	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"

	guardpkg "github.com/agendafacil/agenda-api/internal/guard"
)

type ClientHandler struct {
	guard   *guardpkg.Guard
	clients store.ClientStore
	audit   audit.Recorder
}

func NewClientHandler(
	guard *guardpkg.Guard,
	clients store.ClientStore,
	auditDispatcher audit.Recorder,
) *ClientHandler {
	return &ClientHandler{
		guard:   guard,
		clients: clients,
		audit:   auditDispatcher,
	}
}

// --------- Requests ---------

// ClientRequest é usado em create e update. Update tem semântica de
// substituição completa: opcional omitido vira nulo, não fica como estava.
type ClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"required,oneof=active inactive"`

	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Address      *string    `json:"address"`
	BirthDate    *time.Time `json:"birth_date"`
	CPF          *string    `json:"cpf"`
	Observations *string    `json:"observations"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	clients, err := h.clients.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes")
		return
	}

	httpresp.OK(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	clientID := c.Param("clientId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	client, err := h.clients.FindByID(c.Request.Context(), userID, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente")
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.Param("userId")

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	client := models.Client{
		UserID:       userID,
		Name:         req.Name,
		Status:       req.Status,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		BirthDate:    req.BirthDate,
		CPF:          req.CPF,
		Observations: req.Observations,
	}

	if err := h.clients.Create(c.Request.Context(), &client); err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	clientID := c.Param("clientId")

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	client, err := h.clients.FindByID(c.Request.Context(), userID, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao atualizar cliente")
		return
	}

	client.Name = req.Name
	client.Status = req.Status
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.BirthDate = req.BirthDate
	client.CPF = req.CPF
	client.Observations = req.Observations

	if err := h.clients.Update(c.Request.Context(), client); err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	clientID := c.Param("clientId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	if err := h.clients.Delete(c.Request.Context(), userID, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_delete_client", "Erro ao deletar cliente")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &clientID,
	})

	httpresp.NoContent(c)
}
