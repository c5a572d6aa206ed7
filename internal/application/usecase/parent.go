package usecase

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

// parentInfo décrit la ressource porteuse d'un échange ou d'une pièce jointe,
// une fois la garde d'accès passée.
type parentInfo struct {
	EntityType  string
	Numero      string
	Titre       string
	DemandeurID string
}

// parentResolver charge le parent (ticket, portabilité ou tâche de production)
// et applique la garde d'accès de l'appelant. Les règles de tenant d'un fil de
// discussion sont celles de sa ressource porteuse.
type parentResolver struct {
	ticketRepo repository.TicketRepository
	portaRepo  repository.PortabiliteRepository
	prodRepo   repository.ProductionRepository
	resolver   *access.Resolver
}

func (pr *parentResolver) loadParent(ctx context.Context, caller access.Caller, parentType, parentID string) (*parentInfo, error) {
	var info *parentInfo
	switch parentType {
	case entity.ParentTicket:
		t, err := pr.ticketRepo.GetByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, domain.ErrNotFound
		}
		info = &parentInfo{EntityType: "ticket", Numero: t.Numero, Titre: t.Titre, DemandeurID: t.DemandeurID}
	case entity.ParentPortabilite:
		p, err := pr.portaRepo.GetByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		info = &parentInfo{EntityType: "portabilite", Numero: p.Numero, Titre: p.NumerosPortes, DemandeurID: p.DemandeurID}
	case entity.ParentProductionTache:
		tache, err := pr.prodRepo.GetTacheByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if tache == nil {
			return nil, domain.ErrNotFound
		}
		prod, err := pr.prodRepo.GetByID(ctx, tache.ProductionID)
		if err != nil {
			return nil, err
		}
		if prod == nil {
			return nil, domain.ErrNotFound
		}
		info = &parentInfo{EntityType: "production", Numero: prod.Numero, Titre: tache.Libelle, DemandeurID: prod.DemandeurID}
	default:
		return nil, domain.ErrValidation
	}

	owner, err := pr.resolver.OwnershipOf(ctx, info.DemandeurID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(caller, owner) {
		return nil, domain.ErrForbidden
	}
	return info, nil
}
