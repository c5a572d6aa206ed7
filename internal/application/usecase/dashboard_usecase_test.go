package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

func TestDashboardStats_ComptesDansLePerimetre(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	autre := f.seedSociete(t, "soc-autre", "Autre")
	dem1 := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &acme)
	f.seedDemandeur(t, "dem-3", "dem3@autre.fr", &autre)
	client := f.seedClient(t, "cli-1", "Client SARL")

	_, err := f.ticketUC.Create(ctx, agentCaller(), dto.CreateTicketRequest{
		Titre: "T1", Description: "d", ClientID: client, DemandeurID: "dem-1",
	})
	require.NoError(t, err)
	_, err = f.ticketUC.Create(ctx, agentCaller(), dto.CreateTicketRequest{
		Titre: "T2", Description: "d", ClientID: client, DemandeurID: "dem-1",
		Statut: entity.TicketEnCours,
	})
	require.NoError(t, err)
	_, err = f.ticketUC.Create(ctx, agentCaller(), dto.CreateTicketRequest{
		Titre: "Ailleurs", Description: "d", ClientID: client, DemandeurID: "dem-3",
	})
	require.NoError(t, err)
	_, err = f.productionUC.Create(ctx, agentCaller(), dto.CreateProductionRequest{
		Titre: "P1", ClientID: client, DemandeurID: "dem-1",
	})
	require.NoError(t, err)

	// Vue agent: tout est compté.
	stats, err := f.dashboardUC.Stats(ctx, agentCaller())
	require.NoError(t, err)
	assert.False(t, stats.Degraded)
	assert.Equal(t, 2, stats.Tickets[entity.TicketNouveau])
	assert.Equal(t, 1, stats.Tickets[entity.TicketEnCours])
	assert.Equal(t, 1, stats.Productions[entity.ProductionNouveau])

	// Vue demandeur: le ticket de l'autre société disparaît des comptes.
	stats, err = f.dashboardUC.Stats(ctx, dem1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Tickets[entity.TicketNouveau])
	assert.Equal(t, 1, stats.Tickets[entity.TicketEnCours])
}

// Base indisponible: le tableau de bord sert un jeu de repli à zéro plutôt
// qu'une erreur.
func TestDashboardStats_ModeDegrade(t *testing.T) {
	f := newFixture()
	f.dashboard.Err = errors.New("connexion refusée")

	stats, err := f.dashboardUC.Stats(context.Background(), agentCaller())
	require.NoError(t, err, "l'indisponibilité de la base ne doit pas remonter")
	assert.True(t, stats.Degraded)
	for statut, n := range stats.Tickets {
		assert.Zero(t, n, "statut %s", statut)
	}
	assert.Contains(t, stats.Portabilites, entity.PortabiliteNouveau)
	assert.Contains(t, stats.Productions, entity.ProductionTermine)
}
