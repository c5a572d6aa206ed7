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

// PortabiliteUseCase règles métier des demandes de portabilité. Mêmes règles
// de tenant et de notification que les tickets.
type PortabiliteUseCase struct {
	portaRepo     repository.PortabiliteRepository
	demandeurRepo repository.DemandeurRepository
	resolver      *access.Resolver
	dispatcher    *notify.Dispatcher
	log           *logger.Logger
}

// NewPortabiliteUseCase construit le cas d'usage avec ses ports.
func NewPortabiliteUseCase(
	portaRepo repository.PortabiliteRepository,
	demandeurRepo repository.DemandeurRepository,
	resolver *access.Resolver,
	dispatcher *notify.Dispatcher,
	log *logger.Logger,
) *PortabiliteUseCase {
	return &PortabiliteUseCase{
		portaRepo:     portaRepo,
		demandeurRepo: demandeurRepo,
		resolver:      resolver,
		dispatcher:    dispatcher,
		log:           log,
	}
}

// Create crée une portabilité. Demandeur de référence: forcé à l'appelant pour
// un demandeur, obligatoire dans le corps pour un agent.
func (uc *PortabiliteUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreatePortabiliteRequest) (*dto.PortabiliteResponse, error) {
	if in.ClientID == "" || in.NumerosPortes == "" {
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

	numero, err := genererNumero(ctx, uc.log, uc.portaRepo.NumeroExiste)
	if err != nil {
		return nil, err
	}

	statut := in.Statut
	if statut == "" {
		statut = entity.PortabiliteNouveau
	}
	now := time.Now()
	porta := &entity.Portabilite{
		ID:            uuid.New().String(),
		Numero:        numero,
		ClientID:      in.ClientID,
		DemandeurID:   demandeurID,
		NumerosPortes: in.NumerosPortes,
		Statut:        statut,
		DateDemandee:  in.DateDemandee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.portaRepo.Create(ctx, porta); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(notify.Event{
		Kind:           notify.KindCreated,
		EntityType:     "portabilite",
		Numero:         porta.Numero,
		Titre:          porta.NumerosPortes,
		ActorRole:      caller.Role,
		ActorName:      caller.Email,
		DemandeurEmail: demandeur.Email,
	})

	return toPortabiliteResponse(porta), nil
}

// GetByID retourne une portabilité si l'appelant y a accès.
func (uc *PortabiliteUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.PortabiliteResponse, error) {
	porta, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return toPortabiliteResponse(porta), nil
}

// List retourne les portabilités visibles de l'appelant, paginées.
func (uc *PortabiliteUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.ListResponse[dto.PortabiliteResponse], error) {
	page.Defaults()
	scope, err := uc.resolver.ScopeFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	portas, total, err := uc.portaRepo.List(ctx, repository.ListParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
		Search: page.Search,
	}, scope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PortabiliteResponse, 0, len(portas))
	for _, p := range portas {
		items = append(items, *toPortabiliteResponse(p))
	}
	return &dto.ListResponse[dto.PortabiliteResponse]{
		Data:       items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update modifie une portabilité; un changement de statut déclenche une
// notification unique (ancien, nouveau, acteur).
func (uc *PortabiliteUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdatePortabiliteRequest) (*dto.PortabiliteResponse, error) {
	porta, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	ancienStatut := porta.Statut
	if in.ClientID != nil {
		porta.ClientID = *in.ClientID
	}
	if in.AgentID != nil {
		porta.AgentID = in.AgentID
	}
	if in.NumerosPortes != nil {
		porta.NumerosPortes = *in.NumerosPortes
	}
	if in.Statut != nil {
		porta.Statut = *in.Statut
	}
	if in.DateDemandee != nil {
		porta.DateDemandee = in.DateDemandee
	}
	if in.DateEffective != nil {
		porta.DateEffective = in.DateEffective
	}
	porta.UpdatedAt = time.Now()

	if err := uc.portaRepo.Update(ctx, porta); err != nil {
		return nil, err
	}

	if porta.Statut != ancienStatut {
		uc.dispatcher.Dispatch(notify.Event{
			Kind:           notify.KindStatusChanged,
			EntityType:     "portabilite",
			Numero:         porta.Numero,
			Titre:          porta.NumerosPortes,
			OldStatus:      ancienStatut,
			NewStatus:      porta.Statut,
			ActorRole:      caller.Role,
			ActorName:      caller.Email,
			DemandeurEmail: uc.demandeurEmail(ctx, porta.DemandeurID),
		})
	}

	return toPortabiliteResponse(porta), nil
}

// Delete supprime définitivement une portabilité accessible à l'appelant.
func (uc *PortabiliteUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := uc.loadAutorise(ctx, caller, id); err != nil {
		return err
	}
	return uc.portaRepo.Delete(ctx, id)
}

func (uc *PortabiliteUseCase) loadAutorise(ctx context.Context, caller access.Caller, id string) (*entity.Portabilite, error) {
	porta, err := uc.portaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if porta == nil {
		return nil, domain.ErrNotFound
	}
	owner, err := uc.resolver.OwnershipOf(ctx, porta.DemandeurID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(caller, owner) {
		return nil, domain.ErrForbidden
	}
	return porta, nil
}

func (uc *PortabiliteUseCase) demandeurEmail(ctx context.Context, demandeurID string) string {
	d, err := uc.demandeurRepo.GetByID(ctx, demandeurID)
	if err != nil || d == nil {
		return ""
	}
	return d.Email
}

func toPortabiliteResponse(p *entity.Portabilite) *dto.PortabiliteResponse {
	if p == nil {
		return nil
	}
	return &dto.PortabiliteResponse{
		ID:            p.ID,
		Numero:        p.Numero,
		ClientID:      p.ClientID,
		DemandeurID:   p.DemandeurID,
		AgentID:       p.AgentID,
		NumerosPortes: p.NumerosPortes,
		Statut:        p.Statut,
		DateDemandee:  p.DateDemandee,
		DateEffective: p.DateEffective,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
