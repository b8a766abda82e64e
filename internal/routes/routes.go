package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendafacil/agenda-api/internal/audit"
	"github.com/agendafacil/agenda-api/internal/config"
	"github.com/agendafacil/agenda-api/internal/guard"
	"github.com/agendafacil/agenda-api/internal/handlers"
	infraRepo "github.com/agendafacil/agenda-api/internal/infra/repository"
	"github.com/agendafacil/agenda-api/internal/middleware"
	"github.com/agendafacil/agenda-api/internal/timezone"
	ucDashboard "github.com/agendafacil/agenda-api/internal/usecase/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	professionalRepo := infraRepo.NewProfessionalGormRepository(db)
	sectionRepo := infraRepo.NewSectionGormRepository(db)
	timeRepo := infraRepo.NewTimeGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	ownerGuard := guard.New(userRepo, professionalRepo)

	now := func() time.Time {
		return timezone.Now(cfg.Timezone)
	}

	// ======================================================
	// USE CASES — DASHBOARD
	// ======================================================
	financialReportUC := ucDashboard.NewFinancialReport(reportRepo, now)
	clientsReportUC := ucDashboard.NewClientsReport(reportRepo, now)
	sectionsReportUC := ucDashboard.NewSectionsReport(reportRepo)
	professionalsReportUC := ucDashboard.NewProfessionalsReport(reportRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	userHandler := handlers.NewUserHandler(userRepo, auditDispatcher)
	clientHandler := handlers.NewClientHandler(ownerGuard, clientRepo, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(ownerGuard, professionalRepo, auditDispatcher)
	sectionHandler := handlers.NewSectionHandler(ownerGuard, sectionRepo, auditDispatcher)
	timeHandler := handlers.NewTimeHandler(ownerGuard, timeRepo, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(ownerGuard, appointmentRepo, auditDispatcher, now)

	dashboardHandler := handlers.NewDashboardHandler(
		ownerGuard,
		financialReportUC,
		clientsReportUC,
		sectionsReportUC,
		professionalsReportUC,
	)

	// O token do login só é exigido quando AUTH_REQUIRED está ligado; o
	// modelo de acesso continua sendo o id do dono no path.
	ownerToken := middleware.OwnerToken(cfg, "userId")

	// ======================================================
	// ROTAS
	// ======================================================
	r.POST("/login", authHandler.Login)

	users := r.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.PUT("/:id/data", userHandler.UpdateData)
		users.PUT("/:id/password", userHandler.ChangePassword)
		users.PUT("/:id/status", userHandler.ToggleStatus)
		users.DELETE("/:id", userHandler.Delete)
	}

	clients := r.Group("/clients", ownerToken)
	{
		clients.GET("/:userId", clientHandler.List)
		clients.GET("/:userId/:clientId", clientHandler.Get)
		clients.POST("/:userId", clientHandler.Create)
		clients.PUT("/:userId/:clientId", clientHandler.Update)
		clients.DELETE("/:userId/:clientId", clientHandler.Delete)
	}

	professionals := r.Group("/professionals", ownerToken)
	{
		professionals.GET("/:userId", professionalHandler.List)
		professionals.GET("/:userId/:professionalId", professionalHandler.Get)
		professionals.POST("/:userId", professionalHandler.Create)
		professionals.PUT("/:userId/:professionalId", professionalHandler.Update)
		professionals.DELETE("/:userId/:professionalId", professionalHandler.Delete)
	}

	sections := r.Group("/sections", ownerToken)
	{
		sections.GET("/:userId", sectionHandler.List)
		sections.GET("/:userId/:sectionId", sectionHandler.Get)
		sections.POST("/:userId", sectionHandler.Create)
		sections.PUT("/:userId/:sectionId", sectionHandler.Update)
		sections.DELETE("/:userId/:sectionId", sectionHandler.Delete)
	}

	// Horários são escopados pelo profissional; o token do usuário não se
	// aplica a este grupo.
	times := r.Group("/times")
	{
		times.GET("/:professionalId", timeHandler.List)
		times.GET("/:professionalId/:timeId", timeHandler.Get)
		times.POST("/:professionalId", timeHandler.Create)
		times.PUT("/:professionalId/:timeId", timeHandler.Update)
		times.DELETE("/:professionalId/:timeId", timeHandler.Delete)
	}

	appointments := r.Group("/appointments", ownerToken)
	{
		appointments.GET("/:userId", appointmentHandler.List)
		appointments.GET("/:userId/:appointmentId", appointmentHandler.Get)
		appointments.POST("/:userId", appointmentHandler.Create)
		appointments.PUT("/:userId/:appointmentId", appointmentHandler.Update)
		appointments.PATCH("/:userId/:appointmentId/pay", appointmentHandler.Pay)
		appointments.PATCH("/:userId/:appointmentId/unpay", appointmentHandler.Unpay)
		appointments.DELETE("/:userId/:appointmentId", appointmentHandler.Delete)
	}

	dashboardGroup := r.Group("/dashboard", ownerToken)
	{
		dashboardGroup.GET("/financial/:userId", dashboardHandler.Financial)
		dashboardGroup.GET("/clients/:userId", dashboardHandler.Clients)
		dashboardGroup.GET("/sections/:userId", dashboardHandler.Sections)
		dashboardGroup.GET("/professionals/:userId", dashboardHandler.Professionals)
	}
}
