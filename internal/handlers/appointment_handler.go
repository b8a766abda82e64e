package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendafacil/agenda-api/internal/audit"
	"github.com/agendafacil/agenda-api/internal/calendar"
	"github.com/agendafacil/agenda-api/internal/httperr"
	"github.com/agendafacil/agenda-api/internal/httpresp"
	"github.com/agendafacil/agenda-api/internal/models"
	"github.com/agendafacil/agenda-api/internal/store"

	guardpkg "github.com/agendafacil/agenda-api/internal/guard"
)

type AppointmentHandler struct {
	guard        *guardpkg.Guard
	appointments store.AppointmentStore
	audit        audit.Recorder

	// now devolve o instante atual já no fuso do negócio; injetado para os
	// testes controlarem a data de pagamento.
	now func() time.Time
}

func NewAppointmentHandler(
	guard *guardpkg.Guard,
	appointments store.AppointmentStore,
	auditDispatcher audit.Recorder,
	now func() time.Time,
) *AppointmentHandler {
	return &AppointmentHandler{
		guard:        guard,
		appointments: appointments,
		audit:        auditDispatcher,
		now:          now,
	}
}

// --------- Requests ---------

type AppointmentRequest struct {
	ClientID       string     `json:"client_id" binding:"required"`
	ProfessionalID string     `json:"professional_id" binding:"required"`
	SectionID      string     `json:"section_id" binding:"required"`
	TimeID         string     `json:"time_id" binding:"required"`
	Date           time.Time  `json:"date" binding:"required"`
	Price          float64    `json:"price" binding:"required"`
	PaidAt         *time.Time `json:"paid_at"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	apps, err := h.appointments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos")
		return
	}

	httpresp.OK(c, apps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	userID := c.Param("userId")
	appointmentID := c.Param("appointmentId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	ap, err := h.appointments.FindByID(c.Request.Context(), userID, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.Param("userId")

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	ap := models.Appointment{
		UserID:         userID,
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		SectionID:      req.SectionID,
		TimeID:         req.TimeID,
		Date:           req.Date,
		Price:          req.Price,
		PaidAt:         req.PaidAt,
	}

	if err := h.appointments.Create(c.Request.Context(), &ap); err != nil {
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Relê com as associações carregadas; a resposta de create tem a mesma
	// forma da de get.
	created, err := h.appointments.FindByID(c.Request.Context(), userID, ap.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao criar agendamento")
		return
	}

	httpresp.Created(c, created)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.Param("userId")
	appointmentID := c.Param("appointmentId")

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos os campos são obrigatórios")
		return
	}

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	ap, err := h.appointments.FindByID(c.Request.Context(), userID, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao atualizar agendamento")
		return
	}

	ap.ClientID = req.ClientID
	ap.ProfessionalID = req.ProfessionalID
	ap.SectionID = req.SectionID
	ap.TimeID = req.TimeID
	ap.Date = req.Date
	ap.Price = req.Price
	ap.PaidAt = req.PaidAt

	if err := h.appointments.Update(c.Request.Context(), ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// As associações pré-carregadas em ap apontam para os ids antigos; relê
	// para responder com os vínculos atuais.
	updated, err := h.appointments.FindByID(c.Request.Context(), userID, appointmentID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao atualizar agendamento")
		return
	}

	httpresp.OK(c, updated)
}

// Pay marca o agendamento como pago na meia-noite local da data corrente,
// independente da hora da chamada. Chamadas repetidas no mesmo dia produzem
// o mesmo resultado.
func (h *AppointmentHandler) Pay(c *gin.Context) {
	userID := c.Param("userId")
	appointmentID := c.Param("appointmentId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	ap, err := h.appointments.FindByID(c.Request.Context(), userID, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao atualizar pagamento")
		return
	}

	paidAt := calendar.PaymentDate(h.now())
	ap.PaidAt = &paidAt

	if err := h.appointments.Update(c.Request.Context(), ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar pagamento")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_paid",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

// Unpay limpa o pagamento, devolvendo o agendamento à receita planejada.
func (h *AppointmentHandler) Unpay(c *gin.Context) {
	userID := c.Param("userId")
	appointmentID := c.Param("appointmentId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	ap, err := h.appointments.FindByID(c.Request.Context(), userID, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao atualizar pagamento")
		return
	}

	ap.PaidAt = nil

	if err := h.appointments.Update(c.Request.Context(), ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar pagamento")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_unpaid",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	appointmentID := c.Param("appointmentId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	if err := h.appointments.Delete(c.Request.Context(), userID, appointmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao deletar agendamento")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	httpresp.NoContent(c)
}
