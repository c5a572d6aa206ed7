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

// ProductionUseCase règles métier des dossiers de production et de leurs
// tâches ordonnées.
type ProductionUseCase struct {
	prodRepo      repository.ProductionRepository
	demandeurRepo repository.DemandeurRepository
	resolver      *access.Resolver
	dispatcher    *notify.Dispatcher
	log           *logger.Logger
}

// NewProductionUseCase construit le cas d'usage avec ses ports.
func NewProductionUseCase(
	prodRepo repository.ProductionRepository,
	demandeurRepo repository.DemandeurRepository,
	resolver *access.Resolver,
	dispatcher *notify.Dispatcher,
	log *logger.Logger,
) *ProductionUseCase {
	return &ProductionUseCase{
		prodRepo:      prodRepo,
		demandeurRepo: demandeurRepo,
		resolver:      resolver,
		dispatcher:    dispatcher,
		log:           log,
	}
}

// Create crée une production puis ses tâches initiales, dans l'ordre du corps.
// Les insertions ne sont pas transactionnelles: un échec au milieu laisse la
// production avec une partie de ses tâches (comportement documenté, toléré
// par les appelants). Chaque échec de tâche est journalisé.
func (uc *ProductionUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
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

	numero, err := genererNumero(ctx, uc.log, uc.prodRepo.NumeroExiste)
	if err != nil {
		return nil, err
	}

	statut := in.Statut
	if statut == "" {
		statut = entity.ProductionNouveau
	}
	priorite := in.Priorite
	if priorite == "" {
		priorite = entity.PrioriteNormale
	}
	now := time.Now()
	prod := &entity.Production{
		ID:          uuid.New().String(),
		Numero:      numero,
		Titre:       in.Titre,
		ClientID:    in.ClientID,
		DemandeurID: demandeurID,
		SocieteID:   demandeur.SocieteID,
		Priorite:    priorite,
		Statut:      statut,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.prodRepo.Create(ctx, prod); err != nil {
		return nil, err
	}

	for i, libelle := range in.Taches {
		tache := &entity.ProductionTache{
			ID:           uuid.New().String(),
			ProductionID: prod.ID,
			Ordre:        i + 1,
			Libelle:      libelle,
			Statut:       entity.ProductionNouveau,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.prodRepo.CreateTache(ctx, tache); err != nil {
			uc.log.Error().Err(err).
				Str("production_id", prod.ID).
				Int("ordre", tache.Ordre).
				Msg("insertion de tâche échouée, production partielle")
			return nil, err
		}
		prod.Taches = append(prod.Taches, *tache)
	}

	uc.dispatcher.Dispatch(notify.Event{
		Kind:           notify.KindCreated,
		EntityType:     "production",
		Numero:         prod.Numero,
		Titre:          prod.Titre,
		ActorRole:      caller.Role,
		ActorName:      caller.Email,
		DemandeurEmail: demandeur.Email,
	})

	return toProductionResponse(prod), nil
}

// GetByID retourne une production (tâches comprises) si l'appelant y a accès.
func (uc *ProductionUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.ProductionResponse, error) {
	prod, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return toProductionResponse(prod), nil
}

// List retourne les productions visibles de l'appelant, paginées.
func (uc *ProductionUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.ListResponse[dto.ProductionResponse], error) {
	page.Defaults()
	scope, err := uc.resolver.ScopeFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	prods, total, err := uc.prodRepo.List(ctx, repository.ListParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
		Search: page.Search,
	}, scope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionResponse, 0, len(prods))
	for _, p := range prods {
		items = append(items, *toProductionResponse(p))
	}
	return &dto.ListResponse[dto.ProductionResponse]{
		Data:       items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update modifie une production; un changement de statut déclenche une
// notification unique.
func (uc *ProductionUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateProductionRequest) (*dto.ProductionResponse, error) {
	prod, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	ancienStatut := prod.Statut
	if in.Titre != nil {
		prod.Titre = *in.Titre
	}
	if in.ClientID != nil {
		prod.ClientID = *in.ClientID
	}
	if in.AgentID != nil {
		prod.AgentID = in.AgentID
	}
	if in.Priorite != nil {
		prod.Priorite = *in.Priorite
	}
	if in.Statut != nil {
		prod.Statut = *in.Statut
	}
	prod.UpdatedAt = time.Now()

	if err := uc.prodRepo.Update(ctx, prod); err != nil {
		return nil, err
	}

	if prod.Statut != ancienStatut {
		uc.dispatcher.Dispatch(notify.Event{
			Kind:           notify.KindStatusChanged,
			EntityType:     "production",
			Numero:         prod.Numero,
			Titre:          prod.Titre,
			OldStatus:      ancienStatut,
			NewStatus:      prod.Statut,
			ActorRole:      caller.Role,
			ActorName:      caller.Email,
			DemandeurEmail: uc.demandeurEmail(ctx, prod.DemandeurID),
		})
	}

	return toProductionResponse(prod), nil
}

// Delete supprime définitivement une production accessible à l'appelant.
func (uc *ProductionUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	if _, err := uc.loadAutorise(ctx, caller, id); err != nil {
		return err
	}
	return uc.prodRepo.Delete(ctx, id)
}

// UpdateTache modifie une tâche; un changement de statut de tâche notifie sur
// le dossier parent (même politique que le statut de la production).
func (uc *ProductionUseCase) UpdateTache(ctx context.Context, caller access.Caller, tacheID string, in dto.UpdateTacheRequest) (*dto.TacheResponse, error) {
	tache, err := uc.prodRepo.GetTacheByID(ctx, tacheID)
	if err != nil {
		return nil, err
	}
	if tache == nil {
		return nil, domain.ErrNotFound
	}
	prod, err := uc.loadAutorise(ctx, caller, tache.ProductionID)
	if err != nil {
		return nil, err
	}

	ancienStatut := tache.Statut
	if in.Libelle != nil {
		tache.Libelle = *in.Libelle
	}
	if in.Ordre != nil {
		tache.Ordre = *in.Ordre
	}
	if in.Statut != nil {
		tache.Statut = *in.Statut
	}
	tache.UpdatedAt = time.Now()

	if err := uc.prodRepo.UpdateTache(ctx, tache); err != nil {
		return nil, err
	}

	if tache.Statut != ancienStatut {
		uc.dispatcher.Dispatch(notify.Event{
			Kind:           notify.KindStatusChanged,
			EntityType:     "production",
			Numero:         prod.Numero,
			Titre:          tache.Libelle,
			OldStatus:      ancienStatut,
			NewStatus:      tache.Statut,
			ActorRole:      caller.Role,
			ActorName:      caller.Email,
			DemandeurEmail: uc.demandeurEmail(ctx, prod.DemandeurID),
		})
	}

	return toTacheResponse(tache), nil
}

// DeleteTache supprime une tâche d'une production accessible à l'appelant.
func (uc *ProductionUseCase) DeleteTache(ctx context.Context, caller access.Caller, tacheID string) error {
	tache, err := uc.prodRepo.GetTacheByID(ctx, tacheID)
	if err != nil {
		return err
	}
	if tache == nil {
		return domain.ErrNotFound
	}
	if _, err := uc.loadAutorise(ctx, caller, tache.ProductionID); err != nil {
		return err
	}
	return uc.prodRepo.DeleteTache(ctx, tacheID)
}

func (uc *ProductionUseCase) loadAutorise(ctx context.Context, caller access.Caller, id string) (*entity.Production, error) {
	prod, err := uc.prodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	owner, err := uc.resolver.OwnershipOf(ctx, prod.DemandeurID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(caller, owner) {
		return nil, domain.ErrForbidden
	}
	return prod, nil
}

func (uc *ProductionUseCase) demandeurEmail(ctx context.Context, demandeurID string) string {
	d, err := uc.demandeurRepo.GetByID(ctx, demandeurID)
	if err != nil || d == nil {
		return ""
	}
	return d.Email
}

func toTacheResponse(t *entity.ProductionTache) *dto.TacheResponse {
	if t == nil {
		return nil
	}
	return &dto.TacheResponse{
		ID:           t.ID,
		ProductionID: t.ProductionID,
		Ordre:        t.Ordre,
		Libelle:      t.Libelle,
		Statut:       t.Statut,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	if p == nil {
		return nil
	}
	taches := make([]dto.TacheResponse, 0, len(p.Taches))
	for i := range p.Taches {
		taches = append(taches, *toTacheResponse(&p.Taches[i]))
	}
	return &dto.ProductionResponse{
		ID:          p.ID,
		Numero:      p.Numero,
		Titre:       p.Titre,
		ClientID:    p.ClientID,
		DemandeurID: p.DemandeurID,
		SocieteID:   p.SocieteID,
		AgentID:     p.AgentID,
		Priorite:    p.Priorite,
		Statut:      p.Statut,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Taches:      taches,
	}
}
