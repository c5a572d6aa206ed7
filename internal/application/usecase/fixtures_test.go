package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/notify"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/infrastructure/memory"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

const opsMailbox = "support@voipservices.fr"

// ──────────────────────────────────────────────────────────────────────────────
// Espion d'envoi d'e-mails
// ──────────────────────────────────────────────────────────────────────────────

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// senderSpy enregistre les envois; fail simule un relais SMTP en panne.
type senderSpy struct {
	mu    sync.Mutex
	mails []sentMail
	fail  bool
}

func (s *senderSpy) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("relais smtp indisponible")
	}
	s.mails = append(s.mails, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (s *senderSpy) sent() []sentMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMail(nil), s.mails...)
}

func (s *senderSpy) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mails = nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dépôts en mémoire + cas d'usage câblés comme en production
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	agents       *memory.AgentRepo
	demandeurs   *memory.DemandeurRepo
	societes     *memory.SocieteRepo
	clients      *memory.ClientRepo
	tickets      *memory.TicketRepo
	portabilites *memory.PortabiliteRepo
	productions  *memory.ProductionRepo
	echanges     *memory.EchangeRepo
	fichiers     *memory.FichierRepo
	dashboard    *memory.DashboardRepo

	sender     *senderSpy
	resolver   *access.Resolver
	dispatcher *notify.Dispatcher

	ticketUC      *usecase.TicketUseCase
	portabiliteUC *usecase.PortabiliteUseCase
	productionUC  *usecase.ProductionUseCase
	clientUC      *usecase.ClientUseCase
	societeUC     *usecase.SocieteUseCase
	demandeurUC   *usecase.DemandeurUseCase
	agentUC       *usecase.AgentUseCase
	echangeUC     *usecase.EchangeUseCase
	fichierUC     *usecase.FichierUseCase
	dashboardUC   *usecase.DashboardUseCase
}

func newFixture() *fixture {
	f := &fixture{
		agents:       memory.NewAgentRepository(),
		demandeurs:   memory.NewDemandeurRepository(),
		societes:     memory.NewSocieteRepository(),
		clients:      memory.NewClientRepository(),
		tickets:      memory.NewTicketRepository(),
		portabilites: memory.NewPortabiliteRepository(),
		productions:  memory.NewProductionRepository(),
		echanges:     memory.NewEchangeRepository(),
		fichiers:     memory.NewFichierRepository(),
		sender:       &senderSpy{},
	}
	f.dashboard = memory.NewDashboardRepository(f.tickets, f.portabilites, f.productions)

	log := logger.NewNop()
	f.resolver = access.NewResolver(f.demandeurs)
	f.dispatcher = notify.NewDispatcher(f.sender, opsMailbox, true, log)

	f.ticketUC = usecase.NewTicketUseCase(f.tickets, f.demandeurs, f.resolver, f.dispatcher, log)
	f.portabiliteUC = usecase.NewPortabiliteUseCase(f.portabilites, f.demandeurs, f.resolver, f.dispatcher, log)
	f.productionUC = usecase.NewProductionUseCase(f.productions, f.demandeurs, f.resolver, f.dispatcher, log)
	f.clientUC = usecase.NewClientUseCase(f.clients)
	f.societeUC = usecase.NewSocieteUseCase(f.societes, f.demandeurs)
	f.demandeurUC = usecase.NewDemandeurUseCase(f.demandeurs, f.agents, f.societes, f.resolver)
	f.agentUC = usecase.NewAgentUseCase(f.agents, f.demandeurs)
	f.echangeUC = usecase.NewEchangeUseCase(f.echanges, f.tickets, f.portabilites, f.productions, f.demandeurs, f.resolver, f.dispatcher)
	f.fichierUC = usecase.NewFichierUseCase(f.fichiers, f.tickets, f.portabilites, f.productions, f.resolver, f.dispatcher)
	f.dashboardUC = usecase.NewDashboardUseCase(f.dashboard, f.resolver, log)
	return f
}

// seedSociete enregistre une société et retourne son id.
func (f *fixture) seedSociete(t *testing.T, id, nom string) string {
	t.Helper()
	now := time.Now()
	err := f.societes.Create(context.Background(), &entity.Societe{
		ID: id, Nom: nom, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	return id
}

// seedDemandeur enregistre un demandeur et retourne le Caller correspondant.
func (f *fixture) seedDemandeur(t *testing.T, id, email string, societeID *string) access.Caller {
	t.Helper()
	now := time.Now()
	err := f.demandeurs.Create(context.Background(), &entity.Demandeur{
		ID: id, Email: email, Nom: "Demandeur", SocieteID: societeID,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	return access.Caller{ID: id, Email: email, Role: jwt.RoleDemandeur, SocieteID: societeID}
}

// seedClient enregistre un client et retourne son id.
func (f *fixture) seedClient(t *testing.T, id, nom string) string {
	t.Helper()
	now := time.Now()
	err := f.clients.Create(context.Background(), &entity.Client{
		ID: id, NomSociete: nom, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	return id
}

// agentCaller retourne un appelant agent (pas besoin de fiche en base pour
// les cas d'usage métier).
func agentCaller() access.Caller {
	return access.Caller{ID: "agent-1", Email: "agent@voipservices.fr", Role: jwt.RoleAgent}
}
