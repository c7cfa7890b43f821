package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/scoutline-api/internal/application/auth"
	"github.com/jhoicas/scoutline-api/internal/application/onboarding"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/jhoicas/scoutline-api/internal/domain/entity"
	"github.com/jhoicas/scoutline-api/internal/metrics"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Sessions      *auth.SessionService
	Onboarding    *onboarding.Service
	RoleSelection *onboarding.RoleSelectionUseCase
	AthleteUC     *usecase.AthleteUseCase
	RecruiterUC   *usecase.RecruiterUseCase
	MessageUC     *usecase.MessageUseCase
	AdminUC       *usecase.AdminUseCase
	UserUC        *usecase.UserUseCase
	Metrics       metrics.Recorder
	RateLimiter   *RateLimiter
	Cookies       CookieConfig

	AuthPerMinute          int
	RoleSelectionPerMinute int

	Log zerolog.Logger
}

// Router registra el middleware de sesión y el gate, las páginas protegidas y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.Sessions, deps.Cookies.SessionName))
	app.Use(RequestLogger(deps.Log))

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = NewRateLimiter(0, deps.Log)
	}

	// Páginas (modelos JSON); el gate cubre todo /dashboard, /admin y /onboarding
	app.Use(RouteGate(deps.Onboarding, deps.Metrics))
	pages := NewPageHandler(deps.Onboarding, deps.AdminUC, deps.Cookies, deps.Log)
	app.Get("/", pages.Home)
	app.Get("/dashboard", pages.Dashboard)
	app.Get("/dashboard/:role", pages.RoleDashboard)
	app.Get("/dashboard/:role/*", pages.RoleDashboard)
	app.Get("/onboarding", pages.Onboarding)
	app.Get("/onboarding/:role", pages.OnboardingRole)
	app.Get("/admin", pages.Admin)
	app.Get("/admin/*", pages.Admin)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookies, deps.Log)
	authGroup := api.Group("/auth")
	authLimit := limiter.Middleware("auth", deps.AuthPerMinute)
	authGroup.Post("/register", authLimit, authHandler.Register)
	authGroup.Post("/login", authLimit, authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Usuario de la sesión
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	api.Get("/users/me", RequireSession(), userHandler.Me)

	// Onboarding: selección de rol y alta de perfil
	onboardingHandler := NewOnboardingHandler(deps.RoleSelection, deps.Cookies, deps.Log)
	onb := api.Group("/onboarding", RequireSession())
	selectLimit := limiter.Middleware("role_selection", deps.RoleSelectionPerMinute)
	onb.Post("/role", onboardingHandler.SelectRoleHint)
	onb.Post("/athlete", selectLimit, onboardingHandler.CreateAthlete)
	onb.Post("/recruiter", selectLimit, onboardingHandler.CreateRecruiter)

	// Athletes
	athleteHandler := NewAthleteHandler(deps.AthleteUC, deps.Log)
	athletes := api.Group("/athletes")
	athletes.Get("/me", RequireRole(entity.RoleAthlete), athleteHandler.GetMine)
	athletes.Put("/me", RequireRole(entity.RoleAthlete), athleteHandler.UpdateMine)
	athletes.Get("/", RequirePermission(entity.PermRankingsRead), athleteHandler.Rankings)
	athletes.Get("/:id", RequirePermission(entity.PermAthletesRead), athleteHandler.GetByID)

	// Recruiters
	recruiterHandler := NewRecruiterHandler(deps.RecruiterUC, deps.Log)
	recruiters := api.Group("/recruiters", RequireRole(entity.RoleRecruiter))
	recruiters.Get("/me", recruiterHandler.GetMine)
	recruiters.Put("/me", recruiterHandler.UpdateMine)
	recruiters.Get("/me/matches", athleteHandler.Matches)

	// Messages
	messageHandler := NewMessageHandler(deps.MessageUC, deps.Log)
	messages := api.Group("/messages")
	messages.Post("/", RequirePermission(entity.PermMessagesSend), messageHandler.Send)
	messages.Get("/", RequirePermission(entity.PermMessagesRead), messageHandler.List)
	messages.Patch("/:id/read", RequirePermission(entity.PermMessagesRead), messageHandler.MarkRead)

	// Admin
	adminHandler := NewAdminHandler(deps.AdminUC, deps.Log)
	admin := api.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/users", RequirePermission(entity.PermUsersRead), adminHandler.ListUsers)
	admin.Put("/users/:id/role", RequirePermission(entity.PermUsersWrite), adminHandler.UpdateRole)
	admin.Put("/athletes/:id/rating", RequirePermission(entity.PermAthletesRate), athleteHandler.Rate)
}
