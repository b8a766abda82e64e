package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendafacil/agenda-api/internal/httperr"
	"github.com/agendafacil/agenda-api/internal/httpresp"
	"github.com/agendafacil/agenda-api/internal/usecase/dashboard"

	guardpkg "github.com/agendafacil/agenda-api/internal/guard"
)

// DashboardHandler expõe os quatro relatórios do painel. Os relatórios são
// somente-leitura; a agregação em si vive nos usecases.
type DashboardHandler struct {
	guard *guardpkg.Guard

	financial     *dashboard.FinancialReport
	clients       *dashboard.ClientsReport
	sections      *dashboard.SectionsReport
	professionals *dashboard.ProfessionalsReport
}

func NewDashboardHandler(
	guard *guardpkg.Guard,
	financial *dashboard.FinancialReport,
	clients *dashboard.ClientsReport,
	sections *dashboard.SectionsReport,
	professionals *dashboard.ProfessionalsReport,
) *DashboardHandler {
	return &DashboardHandler{
		guard:         guard,
		financial:     financial,
		clients:       clients,
		sections:      sections,
		professionals: professionals,
	}
}

func (h *DashboardHandler) Financial(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	report, err := h.financial.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao buscar métricas financeiras")
		return
	}

	httpresp.OK(c, report)
}

func (h *DashboardHandler) Clients(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	report, err := h.clients.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao buscar métricas de clientes")
		return
	}

	httpresp.OK(c, report)
}

func (h *DashboardHandler) Sections(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	report, err := h.sections.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao buscar métricas por seção")
		return
	}

	httpresp.OK(c, report)
}

func (h *DashboardHandler) Professionals(c *gin.Context) {
	userID := c.Param("userId")

	if _, err := h.guard.AuthorizeUser(c.Request.Context(), userID); err != nil {
		writeUserGuardErr(c, err)
		return
	}

	report, err := h.professionals.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao buscar métricas por profissional")
		return
	}

	httpresp.OK(c, report)
}
