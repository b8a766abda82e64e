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

// TimeHandler cuida dos horários de atendimento. Diferente dos demais
// recursos, o dono da rota é o profissional, não o usuário.
type TimeHandler struct {
	guard *guardpkg.Guard
	times store.TimeStore
	audit audit.Recorder
}

func NewTimeHandler(
	guard *guardpkg.Guard,
	times store.TimeStore,
	auditDispatcher audit.Recorder,
) *TimeHandler {
	return &TimeHandler{
		guard: guard,
		times: times,
		audit: auditDispatcher,
	}
}

// --------- Requests ---------

type TimeSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r TimeSlotRequest) validate() error {
	if _, err := time.Parse("15:04", r.StartTime); err != nil {
		return err
	}
	if _, err := time.Parse("15:04", r.EndTime); err != nil {
		return err
	}
	return nil
}

// --------- Handlers ---------

func (h *TimeHandler) List(c *gin.Context) {
	professionalID := c.Param("professionalId")

	if _, err := h.guard.AuthorizeProfessional(c.Request.Context(), professionalID); err != nil {
		writeProfessionalGuardErr(c, err)
		return
	}

	slots, err := h.times.ListByProfessional(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_times", "Erro ao buscar horários")
		return
	}

	httpresp.OK(c, slots)
}

func (h *TimeHandler) Get(c *gin.Context) {
	professionalID := c.Param("professionalId")
	timeID := c.Param("timeId")

	if _, err := h.guard.AuthorizeProfessional(c.Request.Context(), professionalID); err != nil {
		writeProfessionalGuardErr(c, err)
		return
	}

	slot, err := h.times.FindByID(c.Request.Context(), professionalID, timeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "time_not_found", "Horário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_time", "Erro ao buscar horário")
		return
	}

	httpresp.OK(c, slot)
}

func (h *TimeHandler) Create(c *gin.Context) {
	professionalID := c.Param("professionalId")

	var req TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Horário inicial e final são obrigatórios")
		return
	}
	if err := req.validate(); err != nil {
		httperr.BadRequest(c, "invalid_time", "Horário deve estar no formato 15:04")
		return
	}

	if _, err := h.guard.AuthorizeProfessional(c.Request.Context(), professionalID); err != nil {
		writeProfessionalGuardErr(c, err)
		return
	}

	slot := models.TimeSlot{
		ProfessionalID: professionalID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	}

	if err := h.times.Create(c.Request.Context(), &slot); err != nil {
		httperr.Internal(c, "failed_to_create_time", "Erro ao criar horário")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "time_created",
		Entity:   "time",
		EntityID: &slot.ID,
	})

	httpresp.Created(c, slot)
}

func (h *TimeHandler) Update(c *gin.Context) {
	professionalID := c.Param("professionalId")
	timeID := c.Param("timeId")

	var req TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Horário inicial e final são obrigatórios")
		return
	}
	if err := req.validate(); err != nil {
		httperr.BadRequest(c, "invalid_time", "Horário deve estar no formato 15:04")
		return
	}

	if _, err := h.guard.AuthorizeProfessional(c.Request.Context(), professionalID); err != nil {
		writeProfessionalGuardErr(c, err)
		return
	}

	slot, err := h.times.FindByID(c.Request.Context(), professionalID, timeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "time_not_found", "Horário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_time", "Erro ao atualizar horário")
		return
	}

	slot.StartTime = req.StartTime
	slot.EndTime = req.EndTime

	if err := h.times.Update(c.Request.Context(), slot); err != nil {
		httperr.Internal(c, "failed_to_update_time", "Erro ao atualizar horário")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "time_updated",
		Entity:   "time",
		EntityID: &slot.ID,
	})

	httpresp.OK(c, slot)
}

func (h *TimeHandler) Delete(c *gin.Context) {
	professionalID := c.Param("professionalId")
	timeID := c.Param("timeId")

	if _, err := h.guard.AuthorizeProfessional(c.Request.Context(), professionalID); err != nil {
		writeProfessionalGuardErr(c, err)
		return
	}

	if err := h.times.Delete(c.Request.Context(), professionalID, timeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "time_not_found", "Horário não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_delete_time", "Erro ao deletar horário")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "time_deleted",
		Entity:   "time",
		EntityID: &timeID,
	})

	httpresp.NoContent(c)
}
