package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

func TestProductionCreate_TachesDansLOrdreDuCorps(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dem := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", nil)
	client := f.seedClient(t, "cli-1", "Client SARL")

	prod, err := f.productionUC.Create(ctx, dem, dto.CreateProductionRequest{
		Titre:    "Déploiement trunk SIP",
		ClientID: client,
		Taches:   []string{"Créer le trunk", "Configurer le routage", "Recetter"},
	})
	require.NoError(t, err)
	require.Len(t, prod.Taches, 3)
	for i, tache := range prod.Taches {
		assert.Equal(t, i+1, tache.Ordre, "les tâches gardent l'ordre du corps")
		assert.Equal(t, entity.ProductionNouveau, tache.Statut)
	}
	assert.Equal(t, "Créer le trunk", prod.Taches[0].Libelle)
	assert.Regexp(t, `^\d{6}$`, prod.Numero)
	assert.Equal(t, entity.PrioriteNormale, prod.Priorite, "priorité par défaut")

	// Relecture: les tâches reviennent avec le dossier.
	relu, err := f.productionUC.GetByID(ctx, dem, prod.ID)
	require.NoError(t, err)
	require.Len(t, relu.Taches, 3)
	assert.Equal(t, "Recetter", relu.Taches[2].Libelle)
}

func TestProductionCreate_DemandeurForceCommeReference(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dem := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", nil)
	f.seedDemandeur(t, "dem-2", "dem2@acme.fr", nil)
	client := f.seedClient(t, "cli-1", "Client SARL")

	prod, err := f.productionUC.Create(ctx, dem, dto.CreateProductionRequest{
		Titre: "Test", ClientID: client, DemandeurID: "dem-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "dem-1", prod.DemandeurID, "un demandeur crée toujours en son nom")

	// Un agent doit désigner un demandeur de référence.
	_, err = f.productionUC.Create(ctx, agentCaller(), dto.CreateProductionRequest{
		Titre: "Test", ClientID: client,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Le changement de statut d'une tâche notifie sur le dossier parent: le
// message porte le numéro de la production et le libellé de la tâche.
func TestProductionUpdateTache_StatutNotifieSurLeDossier(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dem := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", nil)
	client := f.seedClient(t, "cli-1", "Client SARL")

	prod, err := f.productionUC.Create(ctx, agentCaller(), dto.CreateProductionRequest{
		Titre: "Déploiement", ClientID: client, DemandeurID: "dem-1",
		Taches: []string{"Configurer le routage"},
	})
	require.NoError(t, err)
	f.sender.reset()

	tacheID := prod.Taches[0].ID
	_, err = f.productionUC.UpdateTache(ctx, agentCaller(), tacheID, dto.UpdateTacheRequest{
		Statut: ptr(entity.ProductionEnCours),
	})
	require.NoError(t, err)

	mails := f.sender.sent()
	require.Len(t, mails, 1, "un changement de statut de tâche part au demandeur")
	assert.Equal(t, dem.Email, mails[0].To)
	assert.Contains(t, mails[0].Subject, prod.Numero)
	assert.Contains(t, mails[0].Body, "Configurer le routage")
	assert.Contains(t, mails[0].Body, entity.ProductionNouveau)
	assert.Contains(t, mails[0].Body, entity.ProductionEnCours)
}

func TestProductionUpdateTache_SansChangementDeStatut_Silencieux(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.seedDemandeur(t, "dem-1", "dem1@acme.fr", nil)
	client := f.seedClient(t, "cli-1", "Client SARL")

	prod, err := f.productionUC.Create(ctx, agentCaller(), dto.CreateProductionRequest{
		Titre: "Déploiement", ClientID: client, DemandeurID: "dem-1",
		Taches: []string{"Recetter"},
	})
	require.NoError(t, err)
	f.sender.reset()

	maj, err := f.productionUC.UpdateTache(ctx, agentCaller(), prod.Taches[0].ID, dto.UpdateTacheRequest{
		Libelle: ptr("Recetter en préproduction"),
		Ordre:   ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Recetter en préproduction", maj.Libelle)
	assert.Equal(t, 5, maj.Ordre)
	assert.Empty(t, f.sender.sent(), "pas de notification sans changement de statut")
}

func TestProductionTache_AccesParLeDossierParent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	autre := f.seedSociete(t, "soc-autre", "Autre")
	f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &acme)
	intrus := f.seedDemandeur(t, "dem-3", "dem3@autre.fr", &autre)
	client := f.seedClient(t, "cli-1", "Client SARL")

	prod, err := f.productionUC.Create(ctx, agentCaller(), dto.CreateProductionRequest{
		Titre: "Déploiement", ClientID: client, DemandeurID: "dem-1",
		Taches: []string{"Recetter"},
	})
	require.NoError(t, err)

	_, err = f.productionUC.UpdateTache(ctx, intrus, prod.Taches[0].ID, dto.UpdateTacheRequest{
		Statut: ptr(entity.ProductionTermine),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.productionUC.DeleteTache(ctx, intrus, prod.Taches[0].ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.productionUC.UpdateTache(ctx, agentCaller(), "tache-fantome", dto.UpdateTacheRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductionDeleteTache_SupprimeSansToucherLeDossier(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	dem := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", nil)
	client := f.seedClient(t, "cli-1", "Client SARL")

	prod, err := f.productionUC.Create(ctx, dem, dto.CreateProductionRequest{
		Titre: "Déploiement", ClientID: client,
		Taches: []string{"A", "B"},
	})
	require.NoError(t, err)

	require.NoError(t, f.productionUC.DeleteTache(ctx, dem, prod.Taches[0].ID))

	relu, err := f.productionUC.GetByID(ctx, dem, prod.ID)
	require.NoError(t, err)
	require.Len(t, relu.Taches, 1)
	assert.Equal(t, "B", relu.Taches[0].Libelle)
}

func TestProductionList_FiltreParPerimetre(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	autre := f.seedSociete(t, "soc-autre", "Autre")
	dem1 := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &acme)
	dem3 := f.seedDemandeur(t, "dem-3", "dem3@autre.fr", &autre)
	client := f.seedClient(t, "cli-1", "Client SARL")

	_, err := f.productionUC.Create(ctx, dem1, dto.CreateProductionRequest{Titre: "Chez ACME", ClientID: client})
	require.NoError(t, err)
	_, err = f.productionUC.Create(ctx, dem3, dto.CreateProductionRequest{Titre: "Ailleurs", ClientID: client})
	require.NoError(t, err)

	vue, err := f.productionUC.List(ctx, dem1, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, vue.Data, 1)
	assert.Equal(t, "Chez ACME", vue.Data[0].Titre)

	tout, err := f.productionUC.List(ctx, agentCaller(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, tout.Pagination.Total)
}
