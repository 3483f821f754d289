package routes

import (
	"github.com/BruksfildServices01/parlour-booking/internal/audit"
	"github.com/BruksfildServices01/parlour-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/parlour-booking/internal/infra/repository"
	"github.com/BruksfildServices01/parlour-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/parlour-booking/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/parlour-booking/internal/usecase/auth"
	ucParlour "github.com/BruksfildServices01/parlour-booking/internal/usecase/parlour"
)

func RegisterRoutes(s *Server) error {
	r := s.Engine
	cfg := s.Config

	// ======================================================
	// GLOBAL CHAIN
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(s.Log),
		recovery(s.Log),
		middleware.CORSMiddleware(cfg.HTTP.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(s.DB)
	parlourRepo := infraRepo.NewParlourGormRepository(s.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(s.DB)

	gate := middleware.NewGate(s.tokens, userRepo, s.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC, err := ucAuth.NewLogin(userRepo, s.hasher, s.tokens)
	if err != nil {
		return err
	}

	authHandler := handlers.NewAuthHandler(
		ucAuth.NewRegister(userRepo, s.hasher),
		loginUC,
		ucAuth.NewLogout(s.tokens),
		ucAuth.NewGetMe(userRepo),
		s.Log,
	)

	parlourHandler := handlers.NewParlourHandler(
		ucParlour.NewListParlours(parlourRepo, s.images),
		ucParlour.NewListServices(parlourRepo, s.images),
		s.Log,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewBookAppointment(appointmentRepo, s.audit),
		ucAppointment.NewListAppointments(appointmentRepo),
		ucAppointment.NewCancelAppointment(appointmentRepo, s.audit),
		s.Log,
	)

	adminHandler := handlers.NewAdminHandler(
		ucParlour.NewCreateParlour(parlourRepo, s.audit),
		ucParlour.NewCreateService(parlourRepo, s.audit),
		s.Log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(s.DB), s.Log)
	systemHandler := handlers.NewSystemHandler(s.DB, s.Log)

	// ======================================================
	// SYSTEM
	// ======================================================
	r.GET("/", systemHandler.Root)
	r.GET("/ping", systemHandler.Ping)
	r.GET("/health", systemHandler.Health)

	// ======================================================
	// PUBLIC
	// ======================================================
	limited := r.Group("/", middleware.RateLimitByIP(cfg.HTTP.LoginRateLimit, cfg.HTTP.LoginRateBurst))
	{
		limited.POST("/register", authHandler.Register)
		limited.POST("/login", authHandler.Login)
	}

	r.GET("/parlours", parlourHandler.List)
	r.GET("/parlours/:id/services", parlourHandler.Services)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/", gate.Authenticate())
	{
		secured.POST("/logout", authHandler.Logout)
		secured.GET("/me", authHandler.Me)

		secured.POST("/book", appointmentHandler.Book)
		secured.GET("/appointments", appointmentHandler.List)
		secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := secured.Group("/admin", gate.RequireAdmin())
	{
		admin.POST("/parlours", adminHandler.CreateParlour)
		admin.POST("/services", adminHandler.CreateService)
		admin.GET("/audit-logs", auditLogsHandler.List)
	}

	return nil
}
