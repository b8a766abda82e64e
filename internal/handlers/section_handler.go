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

type SectionHandler struct {
	guard    *guardpkg.Guard
	sections store.SectionStore
	audit    audit.Recorder
}

func NewSectionHandler(
	guard *guardpkg.Guard,
	sections store.SectionStore,
	auditDispatcher audit.Recorder,
) *SectionHandler {
	return &SectionHandler{
		guard:    guard,
		sections: sections,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type SectionRequest struct {
	Description string `json:"description" binding:"required"`
}

// --------- Handlers ---------

func (h *SectionHandler) List(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	sections, err := h.sections.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_sections", "Erro ao buscar seções")
		return
	}

	httpresp.OK(c, sections)
}

func (h *SectionHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	sectionID := c.Param("sectionId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	section, err := h.sections.FindByID(c.Request.Context(), userID, sectionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "section_not_found", "Seção não encontrada")
			return
		}
		httperr.Internal(c, "failed_to_get_section", "Erro ao buscar seção")
		return
	}

	httpresp.OK(c, section)
}

func (h *SectionHandler) Create(c *gin.Context) {
	userID := c.Param("userId")

	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Descrição é obrigatória")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	section := models.Section{
		UserID:      userID,
		Description: req.Description,
	}

	if err := h.sections.Create(c.Request.Context(), &section); err != nil {
		httperr.Internal(c, "failed_to_create_section", "Erro ao criar seção")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "section_created",
		Entity:   "section",
		EntityID: &section.ID,
	})

	httpresp.Created(c, section)
}

func (h *SectionHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	sectionID := c.Param("sectionId")

	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Descrição é obrigatória")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	section, err := h.sections.FindByID(c.Request.Context(), userID, sectionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "section_not_found", "Seção não encontrada")
			return
		}
		httperr.Internal(c, "failed_to_get_section", "Erro ao atualizar seção")
		return
	}

	section.Description = req.Description

	if err := h.sections.Update(c.Request.Context(), section); err != nil {
		httperr.Internal(c, "failed_to_update_section", "Erro ao atualizar seção")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "section_updated",
		Entity:   "section",
		EntityID: &section.ID,
	})

	httpresp.OK(c, section)
}

func (h *SectionHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	sectionID := c.Param("sectionId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	if err := h.sections.Delete(c.Request.Context(), userID, sectionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "section_not_found", "Seção não encontrada")
			return
		}
		httperr.Internal(c, "failed_to_delete_section", "Erro ao deletar seção")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "section_deleted",
		Entity:   "section",
		EntityID: &sectionID,
	})

	httpresp.NoContent(c)
}
