package access

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
)

// Resolver rattache une identité de jeton à son périmètre tenant.
type Resolver struct {
	demandeurRepo repository.DemandeurRepository
}

// NewResolver construit le résolveur de tenant.
func NewResolver(demandeurRepo repository.DemandeurRepository) *Resolver {
	return &Resolver{demandeurRepo: demandeurRepo}
}

// ResolveCaller complète l'identité du jeton en Caller. Pour un agent le
// périmètre est global; pour un demandeur, sa société est relue en base.
// Un demandeur supprimé entre l'émission du jeton et l'appel donne
// domain.ErrNotFound (404, jamais 401).
func (r *Resolver) ResolveCaller(ctx context.Context, id *jwt.Identity) (Caller, error) {
	caller := Caller{ID: id.ID, Email: id.Email, Role: id.Role}
	if id.Role != jwt.RoleDemandeur {
		return caller, nil
	}
	d, err := r.lookup(ctx, id)
	if err != nil {
		return Caller{}, err
	}
	caller.ID = d.ID
	caller.SocieteID = d.SocieteID
	return caller, nil
}

// lookup retrouve le demandeur par id, puis par email pour les jetons
// historiques qui n'embarquent pas d'id. Les deux chemins existent chez
// des appelants différents et sont conservés.
func (r *Resolver) lookup(ctx context.Context, id *jwt.Identity) (*entity.Demandeur, error) {
	if id.ID != "" {
		d, err := r.demandeurRepo.GetByID(ctx, id.ID)
		if err != nil {
			return nil, err
		}
		if d != nil {
			return d, nil
		}
	}
	d, err := r.demandeurRepo.GetByEmail(ctx, id.Email)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// VisibleDemandeurIDs retourne les ids de demandeurs visibles par l'appelant:
// les membres de sa société, ou lui seul si non rattaché. Pour un agent le
// résultat est nil (le scope est global).
func (r *Resolver) VisibleDemandeurIDs(ctx context.Context, caller Caller) ([]string, error) {
	if caller.EstAgent() {
		return nil, nil
	}
	if caller.SocieteID == nil {
		return []string{caller.ID}, nil
	}
	ids, err := r.demandeurRepo.ListIDsBySociete(ctx, *caller.SocieteID)
	if err != nil {
		return nil, err
	}
	// L'appelant est toujours inclus, même si la liste en base est en retard.
	for _, id := range ids {
		if id == caller.ID {
			return ids, nil
		}
	}
	return append(ids, caller.ID), nil
}

// ScopeFor combine ResolveCaller et VisibleDemandeurIDs en un périmètre de liste.
func (r *Resolver) ScopeFor(ctx context.Context, caller Caller) (repository.Scope, error) {
	ids, err := r.VisibleDemandeurIDs(ctx, caller)
	if err != nil {
		return repository.Scope{}, err
	}
	return ScopeOf(caller, ids), nil
}

// OwnershipOf retrouve le propriétaire d'une ressource à partir de son
// demandeur de référence, pour alimenter CanAccess.
func (r *Resolver) OwnershipOf(ctx context.Context, demandeurID string) (Ownership, error) {
	d, err := r.demandeurRepo.GetByID(ctx, demandeurID)
	if err != nil {
		return Ownership{}, err
	}
	if d == nil {
		// Demandeur supprimé: la ressource reste visible des agents seulement.
		return Ownership{DemandeurID: demandeurID}, nil
	}
	return Ownership{DemandeurID: d.ID, SocieteID: d.SocieteID}, nil
}
