package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agendafacil/agenda-api/internal/audit"
	"github.com/agendafacil/agenda-api/internal/httperr"
	"github.com/agendafacil/agenda-api/internal/httpresp"
	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"

	guardpkg "github.com/agendafacil/agenda-api/internal/guard"
)

type ProfessionalHandler struct {
	guard         *guardpkg.Guard
	professionals store.ProfessionalStore
	audit         audit.Recorder
}

func NewProfessionalHandler(
	guard *guardpkg.Guard,
	professionals store.ProfessionalStore,
	auditDispatcher audit.Recorder,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		guard:         guard,
		professionals: professionals,
		audit:         auditDispatcher,
	}
}

// --------- Requests ---------

type ProfessionalRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	professionals, err := h.professionals.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao buscar profissionais")
		return
	}

	httpresp.OK(c, professionals)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	professionalID := c.Param("professionalId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	professional, err := h.professionals.FindByID(c.Request.Context(), userID, professionalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional")
		return
	}

	httpresp.OK(c, professional)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	userID := c.Param("userId")

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome do profissional é obrigatório")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	professional := models.Professional{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}

	if err := h.professionals.Create(c.Request.Context(), &professional); err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "professional_created",
		Entity:   "professional",
		EntityID: &professional.ID,
	})

	httpresp.Created(c, professional)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	professionalID := c.Param("professionalId")

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome do profissional é obrigatório")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	professional, err := h.professionals.FindByID(c.Request.Context(), userID, professionalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao atualizar profissional")
		return
	}

	professional.Name = req.Name
	professional.Email = req.Email
	professional.Phone = req.Phone

	if err := h.professionals.Update(c.Request.Context(), professional); err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "professional_updated",
		Entity:   "professional",
		EntityID: &professional.ID,
	})

	httpresp.OK(c, professional)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	professionalID := c.Param("professionalId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	if err := h.professionals.Delete(c.Request.Context(), userID, professionalID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao deletar profissional")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "professional_deleted",
		Entity:   "professional",
		EntityID: &professionalID,
	})

	httpresp.NoContent(c)
}
