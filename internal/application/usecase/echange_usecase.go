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
)

// EchangeUseCase fil de discussion des tickets, portabilités et tâches.
// Append-only: l'auteur vient de l'appelant et est figé à la création.
type EchangeUseCase struct {
	parentResolver
	echangeRepo   repository.EchangeRepository
	demandeurRepo repository.DemandeurRepository
	dispatcher    *notify.Dispatcher
}

// NewEchangeUseCase construit le cas d'usage.
func NewEchangeUseCase(
	echangeRepo repository.EchangeRepository,
	ticketRepo repository.TicketRepository,
	portaRepo repository.PortabiliteRepository,
	prodRepo repository.ProductionRepository,
	demandeurRepo repository.DemandeurRepository,
	resolver *access.Resolver,
	dispatcher *notify.Dispatcher,
) *EchangeUseCase {
	return &EchangeUseCase{
		parentResolver: parentResolver{
			ticketRepo: ticketRepo,
			portaRepo:  portaRepo,
			prodRepo:   prodRepo,
			resolver:   resolver,
		},
		echangeRepo:   echangeRepo,
		demandeurRepo: demandeurRepo,
		dispatcher:    dispatcher,
	}
}

// Create ajoute un message au fil du parent. Notification commentAdded: boîte
// support toujours, demandeur uniquement quand l'auteur est un agent.
func (uc *EchangeUseCase) Create(ctx context.Context, caller access.Caller, parentType, parentID string, in dto.CreateEchangeRequest) (*dto.EchangeResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrValidation
	}
	parent, err := uc.loadParent(ctx, caller, parentType, parentID)
	if err != nil {
		return nil, err
	}

	auteurType := entity.AuteurDemandeur
	if caller.EstAgent() {
		auteurType = entity.AuteurAgent
	}
	echange := &entity.Echange{
		ID:         uuid.New().String(),
		ParentType: parentType,
		ParentID:   parentID,
		AuteurID:   caller.ID,
		AuteurType: auteurType,
		Message:    in.Message,
		CreatedAt:  time.Now(),
	}
	if err := uc.echangeRepo.Create(ctx, echange); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(notify.Event{
		Kind:           notify.KindCommentAdded,
		EntityType:     parent.EntityType,
		Numero:         parent.Numero,
		Titre:          parent.Titre,
		ActorRole:      caller.Role,
		ActorName:      caller.Email,
		DemandeurEmail: uc.demandeurEmail(ctx, parent.DemandeurID),
		Message:        in.Message,
	})

	return toEchangeResponse(echange), nil
}

// ListByParent retourne le fil du parent si l'appelant y a accès.
func (uc *EchangeUseCase) ListByParent(ctx context.Context, caller access.Caller, parentType, parentID string) ([]dto.EchangeResponse, error) {
	if _, err := uc.loadParent(ctx, caller, parentType, parentID); err != nil {
		return nil, err
	}
	echanges, err := uc.echangeRepo.ListByParent(ctx, parentType, parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EchangeResponse, 0, len(echanges))
	for _, e := range echanges {
		items = append(items, *toEchangeResponse(e))
	}
	return items, nil
}

func (uc *EchangeUseCase) demandeurEmail(ctx context.Context, demandeurID string) string {
	d, err := uc.demandeurRepo.GetByID(ctx, demandeurID)
	if err != nil || d == nil {
		return ""
	}
	return d.Email
}

func toEchangeResponse(e *entity.Echange) *dto.EchangeResponse {
	if e == nil {
		return nil
	}
	return &dto.EchangeResponse{
		ID:         e.ID,
		ParentType: e.ParentType,
		ParentID:   e.ParentID,
		AuteurID:   e.AuteurID,
		AuteurType: e.AuteurType,
		Message:    e.Message,
		CreatedAt:  e.CreatedAt,
	}
}
