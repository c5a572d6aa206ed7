package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/auth"
	"github.com/jrossignol/voip-backoffice/internal/application/notify"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
	"github.com/jrossignol/voip-backoffice/internal/infrastructure/mailer"
	"github.com/jrossignol/voip-backoffice/internal/infrastructure/postgres"
	httpRouter "github.com/jrossignol/voip-backoffice/internal/interfaces/http"
	"github.com/jrossignol/voip-backoffice/pkg/config"
	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	// Le secret de repli reste accepté partout, production comprise: on
	// signale la situation au lieu de refuser de démarrer.
	if cfg.JWT.FallbackUsed && cfg.App.IsProduction() {
		log.Warn().Msg("JWT_SECRET absent: secret de développement utilisé en production")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	agentRepo := postgres.NewAgentRepository(pool)
	demandeurRepo := postgres.NewDemandeurRepository(pool)
	societeRepo := postgres.NewSocieteRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	portaRepo := postgres.NewPortabiliteRepository(pool)
	prodRepo := postgres.NewProductionRepository(pool)
	echangeRepo := postgres.NewEchangeRepository(pool)
	fichierRepo := postgres.NewFichierRepository(pool)
	dashRepo := postgres.NewDashboardRepository(pool)

	resolver := access.NewResolver(demandeurRepo)

	// Notifications: best-effort. Sans relais SMTP configuré, le dispatcher
	// reste muet mais les opérations métier fonctionnent normalement.
	var sender notify.Sender
	if cfg.SMTP.Host != "" {
		sender = mailer.NewSMTPSender(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP_HOST absent: notifications e-mail désactivées")
	}
	dispatcher := notify.NewDispatcher(sender, cfg.Notify.OpsMailbox, cfg.Notify.Enabled, log)

	authUC := auth.NewUseCase(agentRepo, demandeurRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpirationHours,
		Issuer:   cfg.JWT.Issuer,
	})
	ticketUC := usecase.NewTicketUseCase(ticketRepo, demandeurRepo, resolver, dispatcher, log)
	portaUC := usecase.NewPortabiliteUseCase(portaRepo, demandeurRepo, resolver, dispatcher, log)
	prodUC := usecase.NewProductionUseCase(prodRepo, demandeurRepo, resolver, dispatcher, log)
	clientUC := usecase.NewClientUseCase(clientRepo)
	societeUC := usecase.NewSocieteUseCase(societeRepo, demandeurRepo)
	demandeurUC := usecase.NewDemandeurUseCase(demandeurRepo, agentRepo, societeRepo, resolver)
	agentUC := usecase.NewAgentUseCase(agentRepo, demandeurRepo)
	echangeUC := usecase.NewEchangeUseCase(echangeRepo, ticketRepo, portaRepo, prodRepo, demandeurRepo, resolver, dispatcher)
	fichierUC := usecase.NewFichierUseCase(fichierRepo, ticketRepo, portaRepo, prodRepo, resolver, dispatcher)
	dashboardUC := usecase.NewDashboardUseCase(dashRepo, resolver, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // pièces jointes en base64 dans le corps
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VoIP Back Office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		TicketUC:      ticketUC,
		PortabiliteUC: portaUC,
		ProductionUC:  prodUC,
		ClientUC:      clientUC,
		SocieteUC:     societeUC,
		DemandeurUC:   demandeurUC,
		AgentUC:       agentUC,
		EchangeUC:     echangeUC,
		FichierUC:     fichierUC,
		DashboardUC:   dashboardUC,
		Resolver:      resolver,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
