package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/auth"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	TicketUC      *usecase.TicketUseCase
	PortabiliteUC *usecase.PortabiliteUseCase
	ProductionUC  *usecase.ProductionUseCase
	ClientUC      *usecase.ClientUseCase
	SocieteUC     *usecase.SocieteUseCase
	DemandeurUC   *usecase.DemandeurUseCase
	AgentUC       *usecase.AgentUseCase
	EchangeUC     *usecase.EchangeUseCase
	FichierUC     *usecase.FichierUseCase
	DashboardUC   *usecase.DashboardUseCase
	Resolver      *access.Resolver
	JWTSecret     string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Routes protégées (Bearer Token + résolution du tenant)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Resolver))

	echangeHandler := NewEchangeHandler(deps.EchangeUC)
	fichierHandler := NewFichierHandler(deps.FichierUC)

	// Tickets (protégé)
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Put("/:id", ticketHandler.Update)
	tickets.Delete("/:id", ticketHandler.Delete)
	tickets.Post("/:id/echanges", echangeHandler.Create(entity.ParentTicket))
	tickets.Get("/:id/echanges", echangeHandler.ListByParent(entity.ParentTicket))
	tickets.Post("/:id/fichiers", fichierHandler.Create(entity.ParentTicket))
	tickets.Get("/:id/fichiers", fichierHandler.ListByParent(entity.ParentTicket))

	// Portabilités (protégé)
	portabilites := protected.Group("/portabilites")
	portabiliteHandler := NewPortabiliteHandler(deps.PortabiliteUC)
	portabilites.Post("/", portabiliteHandler.Create)
	portabilites.Get("/", portabiliteHandler.List)
	portabilites.Get("/:id", portabiliteHandler.GetByID)
	portabilites.Put("/:id", portabiliteHandler.Update)
	portabilites.Delete("/:id", portabiliteHandler.Delete)
	portabilites.Post("/:id/echanges", echangeHandler.Create(entity.ParentPortabilite))
	portabilites.Get("/:id/echanges", echangeHandler.ListByParent(entity.ParentPortabilite))
	portabilites.Post("/:id/fichiers", fichierHandler.Create(entity.ParentPortabilite))
	portabilites.Get("/:id/fichiers", fichierHandler.ListByParent(entity.ParentPortabilite))

	// Productions et tâches (protégé)
	productions := protected.Group("/productions")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	productions.Post("/", productionHandler.Create)
	productions.Get("/", productionHandler.List)
	productions.Get("/:id", productionHandler.GetByID)
	productions.Put("/:id", productionHandler.Update)
	productions.Delete("/:id", productionHandler.Delete)

	taches := protected.Group("/taches")
	taches.Put("/:tacheId", productionHandler.UpdateTache)
	taches.Delete("/:tacheId", productionHandler.DeleteTache)
	taches.Post("/:id/echanges", echangeHandler.Create(entity.ParentProductionTache))
	taches.Get("/:id/echanges", echangeHandler.ListByParent(entity.ParentProductionTache))
	taches.Post("/:id/fichiers", fichierHandler.Create(entity.ParentProductionTache))
	taches.Get("/:id/fichiers", fichierHandler.ListByParent(entity.ParentProductionTache))

	// Fichiers à plat: téléchargement et suppression
	fichiers := protected.Group("/fichiers")
	fichiers.Get("/:id", fichierHandler.GetByID)
	fichiers.Delete("/:id", fichierHandler.Delete)

	// Clients (protégé, tous rôles)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Demandeurs (protégé; périmètre société appliqué dans les cas d'usage)
	demandeurs := protected.Group("/demandeurs")
	demandeurHandler := NewDemandeurHandler(deps.DemandeurUC)
	demandeurs.Post("/", demandeurHandler.Create)
	demandeurs.Get("/", demandeurHandler.List)
	demandeurs.Get("/:id", demandeurHandler.GetByID)
	demandeurs.Put("/:id", demandeurHandler.Update)
	demandeurs.Delete("/:id", demandeurHandler.Delete)

	// Sociétés (réservé aux agents)
	societes := protected.Group("/societes", AgentOnly())
	societeHandler := NewSocieteHandler(deps.SocieteUC)
	societes.Post("/", societeHandler.Create)
	societes.Get("/", societeHandler.List)
	societes.Get("/:id", societeHandler.GetByID)
	societes.Put("/:id", societeHandler.Update)
	societes.Delete("/:id", societeHandler.Delete)

	// Agents (réservé aux agents)
	agents := protected.Group("/agents", AgentOnly())
	agentHandler := NewAgentHandler(deps.AgentUC)
	agents.Post("/", agentHandler.Create)
	agents.Get("/", agentHandler.List)
	agents.Get("/:id", agentHandler.GetByID)
	agents.Put("/:id", agentHandler.Update)
	agents.Delete("/:id", agentHandler.Delete)

	// Tableau de bord (protégé)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Stats)
}
