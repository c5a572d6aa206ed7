// Package memory fournit des implémentations en mémoire des ports de
// persistance, destinées aux tests des cas d'usage. Chaque fake reproduit la
// sémantique de l'adaptateur PostgreSQL correspondant (nil sans erreur quand
// absent, sentinelles du domaine sur conflit d'unicité, filtrage par périmètre).
package memory

import (
	"sort"
	"strings"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

// contient teste la présence du motif de recherche, insensible à la casse et
// aux accents. Motif et champs sont repliés de la même façon que côté SQL.
func contient(motif string, champs ...string) bool {
	if motif == "" {
		return true
	}
	motif = domain.ReplierRecherche(motif)
	for _, c := range champs {
		if strings.Contains(domain.ReplierRecherche(c), motif) {
			return true
		}
	}
	return false
}

// paginer découpe la tranche selon Limit/Offset et retourne la page et le total.
func paginer[T any](items []T, p repository.ListParams) ([]T, int) {
	total := len(items)
	if p.Offset >= total {
		return nil, total
	}
	fin := p.Offset + p.Limit
	if p.Limit <= 0 || fin > total {
		fin = total
	}
	return items[p.Offset:fin], total
}

// trierParID fixe un ordre stable pour les listes des fakes.
func trierParID[T any](items []T, id func(T) string) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
