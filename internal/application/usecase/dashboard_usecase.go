package usecase

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

// DashboardUseCase agrégation de comptes par statut pour l'écran d'accueil.
// Seule surface avec un mode dégradé: si la base est indisponible, un jeu de
// données de repli est servi plutôt qu'une erreur. Ce comportement est
// réservé à cette agrégation non critique et ne doit pas devenir un motif
// général.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
	resolver *access.Resolver
	log      *logger.Logger
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, resolver *access.Resolver, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, resolver: resolver, log: log}
}

// Stats retourne les comptes par statut dans le périmètre de l'appelant.
func (uc *DashboardUseCase) Stats(ctx context.Context, caller access.Caller) (*dto.DashboardResponse, error) {
	scope, err := uc.resolver.ScopeFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	stats, err := uc.dashRepo.CountsParStatut(ctx, scope)
	if err != nil {
		uc.log.Error().Err(err).Msg("agrégation tableau de bord indisponible, repli sur le jeu de secours")
		return fallbackStats(), nil
	}
	return &dto.DashboardResponse{
		Tickets:      stats.TicketsParStatut,
		Portabilites: stats.PortabilitesParStatut,
		Productions:  stats.ProductionsParStatut,
	}, nil
}

// fallbackStats est le jeu de repli servi quand la base ne répond pas.
func fallbackStats() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Tickets: map[string]int{
			entity.TicketNouveau: 0,
			entity.TicketEnCours: 0,
			entity.TicketAttente: 0,
			entity.TicketRepondu: 0,
			entity.TicketResolu:  0,
			entity.TicketFerme:   0,
		},
		Portabilites: map[string]int{
			entity.PortabiliteNouveau: 0,
			entity.PortabiliteEnCours: 0,
			entity.PortabiliteTermine: 0,
		},
		Productions: map[string]int{
			entity.ProductionNouveau: 0,
			entity.ProductionEnCours: 0,
			entity.ProductionTermine: 0,
		},
		Degraded: true,
	}
}
