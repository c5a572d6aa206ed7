package repository

// ListParams paramètres de pagination et de recherche des listes.
type ListParams struct {
	Limit  int
	Offset int
	Search string // filtre plein-texte simple, insensible aux accents côté adaptateur
}

// Scope restreint la visibilité d'une liste selon l'appelant.
// All vaut true pour un agent (aucune restriction); sinon DemandeurIDs contient
// les ids de demandeurs dont les ressources sont visibles (soi-même plus les
// collègues de la même société).
type Scope struct {
	All          bool
	DemandeurIDs []string
}

// ScopeAll retourne le scope sans restriction (agents).
func ScopeAll() Scope { return Scope{All: true} }

// ScopeDemandeurs retourne le scope limité aux demandeurs donnés.
func ScopeDemandeurs(ids ...string) Scope { return Scope{DemandeurIDs: ids} }

// Autorise indique si le scope couvre le demandeur donné.
func (s Scope) Autorise(demandeurID string) bool {
	if s.All {
		return true
	}
	for _, id := range s.DemandeurIDs {
		if id == demandeurID {
			return true
		}
	}
	return false
}
