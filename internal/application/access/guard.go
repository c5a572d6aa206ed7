package access

import (
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
)

// Caller est l'appelant résolu: identité du jeton plus, pour un demandeur,
// sa société (nil si non rattaché).
type Caller struct {
	ID        string
	Email     string
	Role      string
	SocieteID *string
}

// EstAgent indique si l'appelant a le rôle agent (accès global).
func (c Caller) EstAgent() bool { return c.Role == jwt.RoleAgent }

// Ownership décrit le propriétaire d'une ressource: le demandeur de référence
// et la société de ce demandeur (nil si non rattaché).
type Ownership struct {
	DemandeurID string
	SocieteID   *string
}

// CanAccess applique la table de décision d'accès:
//   - agent: tout est permis;
//   - demandeur: ses propres ressources, ou celles d'un collègue de la même
//     société (société non nulle des deux côtés);
//   - sinon: refus.
//
// La même règle vaut pour lecture, mise à jour et suppression; la création
// passe par les règles de forçage du demandeur de référence dans les cas d'usage.
func CanAccess(caller Caller, owner Ownership) bool {
	if caller.EstAgent() {
		return true
	}
	if caller.Role != jwt.RoleDemandeur {
		return false
	}
	if owner.DemandeurID == caller.ID {
		return true
	}
	if caller.SocieteID == nil || owner.SocieteID == nil {
		return false
	}
	return *caller.SocieteID == *owner.SocieteID
}

// ScopeOf calcule le périmètre de visibilité des listes pour l'appelant:
// tout pour un agent; les ids déjà résolus (soi + collègues) pour un demandeur.
func ScopeOf(caller Caller, visibleIDs []string) repository.Scope {
	if caller.EstAgent() {
		return repository.ScopeAll()
	}
	return repository.ScopeDemandeurs(visibleIDs...)
}
