package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo implémentation PostgreSQL du port DashboardRepository.
// Trois agrégations GROUP BY, une par table suivie, filtrées par le périmètre.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construit l'adaptateur de lecture du tableau de bord.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountsParStatut agrège les comptes par statut des tickets, portabilités et
// productions visibles dans le périmètre.
func (r *DashboardRepo) CountsParStatut(ctx context.Context, scope repository.Scope) (*repository.DashboardStats, error) {
	stats := &repository.DashboardStats{
		TicketsParStatut:      map[string]int{},
		PortabilitesParStatut: map[string]int{},
		ProductionsParStatut:  map[string]int{},
	}

	tables := []struct {
		nom  string
		dest map[string]int
	}{
		{"tickets", stats.TicketsParStatut},
		{"portabilites", stats.PortabilitesParStatut},
		{"productions", stats.ProductionsParStatut},
	}

	ids := scope.DemandeurIDs
	if ids == nil {
		ids = []string{}
	}

	for _, t := range tables {
		query := fmt.Sprintf(`
			SELECT statut, count(*) FROM %s
			WHERE ($1 OR demandeur_id = ANY($2))
			GROUP BY statut`, t.nom)
		rows, err := r.pool.Query(ctx, query, scope.All, ids)
		if err != nil {
			return nil, fmt.Errorf("agrégation %s: %w", t.nom, err)
		}
		for rows.Next() {
			var statut string
			var n int
			if err := rows.Scan(&statut, &n); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan agrégation %s: %w", t.nom, err)
			}
			t.dest[statut] = n
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("agrégation %s: %w", t.nom, err)
		}
	}
	return stats, nil
}
