package memory

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo fake en mémoire du port DashboardRepository, agrégeant les
// trois fakes de dossiers. Err permet de forcer une erreur pour tester le
// mode dégradé du tableau de bord.
type DashboardRepo struct {
	Tickets      *TicketRepo
	Portabilites *PortabiliteRepo
	Productions  *ProductionRepo
	Err          error
}

// NewDashboardRepository construit un fake agrégé sur les trois dépôts donnés.
func NewDashboardRepository(t *TicketRepo, p *PortabiliteRepo, pr *ProductionRepo) *DashboardRepo {
	return &DashboardRepo{Tickets: t, Portabilites: p, Productions: pr}
}

func (r *DashboardRepo) CountsParStatut(_ context.Context, scope repository.Scope) (*repository.DashboardStats, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	stats := &repository.DashboardStats{
		TicketsParStatut:      map[string]int{},
		PortabilitesParStatut: map[string]int{},
		ProductionsParStatut:  map[string]int{},
	}
	r.Tickets.mu.RLock()
	for _, t := range r.Tickets.tickets {
		if scope.Autorise(t.DemandeurID) {
			stats.TicketsParStatut[t.Statut]++
		}
	}
	r.Tickets.mu.RUnlock()
	r.Portabilites.mu.RLock()
	for _, p := range r.Portabilites.portabilites {
		if scope.Autorise(p.DemandeurID) {
			stats.PortabilitesParStatut[p.Statut]++
		}
	}
	r.Portabilites.mu.RUnlock()
	r.Productions.mu.RLock()
	for _, p := range r.Productions.productions {
		if scope.Autorise(p.DemandeurID) {
			stats.ProductionsParStatut[p.Statut]++
		}
	}
	r.Productions.mu.RUnlock()
	return stats, nil
}
