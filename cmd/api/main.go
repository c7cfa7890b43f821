package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/scoutline-api/docs"
	"github.com/jhoicas/scoutline-api/internal/application/auth"
	"github.com/jhoicas/scoutline-api/internal/application/onboarding"
	"github.com/jhoicas/scoutline-api/internal/application/profile"
	"github.com/jhoicas/scoutline-api/internal/application/usecase"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/identity"
	"github.com/jhoicas/scoutline-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/scoutline-api/internal/interfaces/http"
	"github.com/jhoicas/scoutline-api/internal/metrics"
	"github.com/jhoicas/scoutline-api/internal/security"
	"github.com/jhoicas/scoutline-api/pkg/config"
	"github.com/jhoicas/scoutline-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/swaggo/swag"
)

// @title                       Scoutline API
// @version                     1.0
// @description                 API de scouting deportivo: sesiones, onboarding por rol, perfiles, rankings y mensajería.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: toda petición se tratará como anónima")
	}

	if cfg.DB.MigrateOnStart {
		if err := postgres.MigrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	athleteRepo := postgres.NewAthleteRepository(pool)
	recruiterRepo := postgres.NewRecruiterRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(reg)

	idp := identity.NewJWTProvider(cfg.JWT)
	builder := profile.NewBuilder(security.NewTextSanitizer())

	authUC := auth.NewAuthUseCase(userRepo, idp)
	sessions := auth.NewSessionService(idp, userRepo, recorder, log.Component("session"))
	onboardingSvc := onboarding.NewService(athleteRepo, recruiterRepo, recorder, log.Component("onboarding"))
	roleSelection := onboarding.NewRoleSelectionUseCase(txRunner, idp, builder, recorder, log.Component("role_selection"))
	athleteUC := usecase.NewAthleteUseCase(athleteRepo, recruiterRepo, builder)
	recruiterUC := usecase.NewRecruiterUseCase(recruiterRepo, builder)
	messageUC := usecase.NewMessageUseCase(messageRepo, userRepo, builder)
	adminUC := usecase.NewAdminUseCase(userRepo, log.Component("admin"))
	userUC := usecase.NewUserUseCase(userRepo)

	limiter := httpRouter.NewRateLimiter(5*time.Minute, log.Component("ratelimit"))
	defer limiter.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Scoutline API",
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		c.Type("json")
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(reg)))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:                 authUC,
		Sessions:               sessions,
		Onboarding:             onboardingSvc,
		RoleSelection:          roleSelection,
		AthleteUC:              athleteUC,
		RecruiterUC:            recruiterUC,
		MessageUC:              messageUC,
		AdminUC:                adminUC,
		UserUC:                 userUC,
		Metrics:                recorder,
		RateLimiter:            limiter,
		Cookies:                httpRouter.NewCookieConfig(cfg.Session, cfg.JWT),
		AuthPerMinute:          cfg.RateLimit.AuthPerMinute,
		RoleSelectionPerMinute: cfg.RateLimit.RoleSelectionPerMinute,
		Log:                    log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
