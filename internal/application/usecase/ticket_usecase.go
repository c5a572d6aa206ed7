package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/notify"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

// TicketUseCase règles métier des tickets de support: contrôle d'accès
// multi-tenant, numérotation, détection de transition de statut et
// notifications best-effort.
type TicketUseCase struct {
	ticketRepo    repository.TicketRepository
	demandeurRepo repository.DemandeurRepository
	resolver      *access.Resolver
	dispatcher    *notify.Dispatcher
	log           *logger.Logger
}

// NewTicketUseCase construit le cas d'usage avec ses ports.
func NewTicketUseCase(
	ticketRepo repository.TicketRepository,
	demandeurRepo repository.DemandeurRepository,
	resolver *access.Resolver,
	dispatcher *notify.Dispatcher,
	log *logger.Logger,
) *TicketUseCase {
	return &TicketUseCase{
		ticketRepo:    ticketRepo,
		demandeurRepo: demandeurRepo,
		resolver:      resolver,
		dispatcher:    dispatcher,
		log:           log,
	}
}

// Create crée un ticket. Un demandeur est forcé comme demandeur de référence
// (le demandeur_id du corps est ignoré); un agent doit fournir demandeur_id
// explicitement; son absence est une erreur de validation, pas un défaut.
func (uc *TicketUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.Titre == "" || in.ClientID == "" {
		return nil, domain.ErrValidation
	}

	demandeurID := in.DemandeurID
	if !caller.EstAgent() {
		demandeurID = caller.ID
	} else if demandeurID == "" {
		return nil, domain.ErrValidation
	}
	demandeur, err := uc.demandeurRepo.GetByID(ctx, demandeurID)
	if err != nil {
		return nil, err
	}
	if demandeur == nil {
		return nil, domain.ErrValidation
	}

	numero, err := genererNumero(ctx, uc.log, uc.ticketRepo.NumeroExiste)
	if err != nil {
		return nil, err
	}

	statut := in.Statut
	if statut == "" {
		statut = entity.TicketNouveau
	}
	now := time.Now()
	ticket := &entity.Ticket{
		ID:          uuid.New().String(),
		Numero:      numero,
		Titre:       in.Titre,
		Description: in.Description,
		ClientID:    in.ClientID,
		DemandeurID: demandeurID,
		Statut:      statut,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(notify.Event{
		Kind:           notify.KindCreated,
		EntityType:     "ticket",
		Numero:         ticket.Numero,
		Titre:          ticket.Titre,
		ActorRole:      caller.Role,
		ActorName:      caller.Email,
		DemandeurEmail: demandeur.Email,
	})

	return toTicketResponse(ticket), nil
}

// GetByID retourne un ticket si l'appelant y a accès.
func (uc *TicketUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.TicketResponse, error) {
	ticket, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// List retourne les tickets visibles de l'appelant, paginés.
func (uc *TicketUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.ListResponse[dto.TicketResponse], error) {
	page.Defaults()
	scope, err := uc.resolver.ScopeFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	tickets, total, err := uc.ticketRepo.List(ctx, repository.ListParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
		Search: page.Search,
	}, scope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, *toTicketResponse(t))
	}
	return &dto.ListResponse[dto.TicketResponse]{
		Data:       items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update modifie un ticket. Tout statut est accepté (pas de graphe de
// transition); un changement de statut déclenche exactement une notification
// portant (ancien, nouveau, acteur), un statut identique n'en déclenche aucune.
func (uc *TicketUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	ancienStatut := ticket.Statut
	if in.Titre != nil {
		ticket.Titre = *in.Titre
	}
	if in.Description != nil {
		ticket.Description = *in.Description
	}
	if in.ClientID != nil {
		ticket.ClientID = *in.ClientID
	}
	if in.AgentID != nil {
		ticket.AgentID = in.AgentID
	}
	if in.Statut != nil {
		ticket.Statut = *in.Statut
	}
	ticket.UpdatedAt = time.Now()
	if ticket.EstClos() && ticket.ClosedAt == nil {
		now := ticket.UpdatedAt
		ticket.ClosedAt = &now
	}

	if err := uc.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if ticket.Statut != ancienStatut {
		uc.dispatcher.Dispatch(notify.Event{
			Kind:           notify.KindStatusChanged,
			EntityType:     "ticket",
			Numero:         ticket.Numero,
			Titre:          ticket.Titre,
			OldStatus:      ancienStatut,
			NewStatus:      ticket.Statut,
			ActorRole:      caller.Role,
			ActorName:      caller.Email,
			DemandeurEmail: uc.demandeurEmail(ctx, ticket.DemandeurID),
		})
	}

	return toTicketResponse(ticket), nil
}

// Delete supprime définitivement un ticket accessible à l'appelant.
func (uc *TicketUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := uc.loadAutorise(ctx, caller, id); err != nil {
		return err
	}
	return uc.ticketRepo.Delete(ctx, id)
}

// loadAutorise charge le ticket et applique la garde d'accès.
func (uc *TicketUseCase) loadAutorise(ctx context.Context, caller access.Caller, id string) (*entity.Ticket, error) {
	ticket, err := uc.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	owner, err := uc.resolver.OwnershipOf(ctx, ticket.DemandeurID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(caller, owner) {
		return nil, domain.ErrForbidden
	}
	return ticket, nil
}

// demandeurEmail retrouve l'e-mail du demandeur de référence; vide si inconnu.
// Les erreurs de lecture sont avalées: elles ne doivent pas bloquer une
// notification best-effort.
func (uc *TicketUseCase) demandeurEmail(ctx context.Context, demandeurID string) string {
	d, err := uc.demandeurRepo.GetByID(ctx, demandeurID)
	if err != nil || d == nil {
		return ""
	}
	return d.Email
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:          t.ID,
		Numero:      t.Numero,
		Titre:       t.Titre,
		Description: t.Description,
		ClientID:    t.ClientID,
		DemandeurID: t.DemandeurID,
		AgentID:     t.AgentID,
		Statut:      t.Statut,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ClosedAt:    t.ClosedAt,
	}
}
