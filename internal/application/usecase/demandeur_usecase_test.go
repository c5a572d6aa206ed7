package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// Un demandeur qui crée un collègue ne choisit pas la société: le corps est
// ignoré et le compte atterrit dans la sienne.
func TestDemandeurCreate_CantonneASaSociete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	autre := f.seedSociete(t, "soc-autre", "Autre")
	dem := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &acme)

	cree, err := f.demandeurUC.Create(ctx, dem, dto.CreateDemandeurRequest{
		Email: "collegue@acme.fr", Password: "secret12", Nom: "Collègue",
		SocieteID: &autre,
	})
	require.NoError(t, err)
	require.NotNil(t, cree.SocieteID)
	assert.Equal(t, acme, *cree.SocieteID, "le societe_id du corps doit être remplacé par celui de l'appelant")

	// Un agent, lui, place le compte où il veut.
	place, err := f.demandeurUC.Create(ctx, agentCaller(), dto.CreateDemandeurRequest{
		Email: "nouveau@autre.fr", Password: "secret12", Nom: "Nouveau",
		SocieteID: &autre,
	})
	require.NoError(t, err)
	require.NotNil(t, place.SocieteID)
	assert.Equal(t, autre, *place.SocieteID)
}

func TestDemandeurCreate_ChampsObligatoires(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cas := []dto.CreateDemandeurRequest{
		{Password: "secret12", Nom: "Sans Email"},
		{Email: "a@b.fr", Nom: "Sans Mot De Passe"},
		{Email: "a@b.fr", Password: "secret12"},
	}
	for _, in := range cas {
		_, err := f.demandeurUC.Create(ctx, agentCaller(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestDemandeurCreate_SocieteInconnue(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.demandeurUC.Create(ctx, agentCaller(), dto.CreateDemandeurRequest{
		Email: "a@b.fr", Password: "secret12", Nom: "Test",
		SocieteID: ptr("soc-fantome"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// L'email doit être libre sur les deux tables: un email d'agent bloque la
// création d'un demandeur.
func TestDemandeurCreate_EmailPrisParUnAgent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, f.agents.Create(ctx, &entity.Agent{
		ID: "agent-1", Email: "support@voipservices.fr", Nom: "Support",
		CreatedAt: now, UpdatedAt: now,
	}))
	f.seedDemandeur(t, "dem-1", "dem1@acme.fr", nil)

	_, err := f.demandeurUC.Create(ctx, agentCaller(), dto.CreateDemandeurRequest{
		Email: "support@voipservices.fr", Password: "secret12", Nom: "Doublon",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	_, err = f.demandeurUC.Create(ctx, agentCaller(), dto.CreateDemandeurRequest{
		Email: "dem1@acme.fr", Password: "secret12", Nom: "Doublon",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

// Le rattachement de société est réservé aux agents; un demandeur qui tente
// de déplacer un collègue voit le champ ignoré.
func TestDemandeurUpdate_RattachementReserveAuxAgents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	autre := f.seedSociete(t, "soc-autre", "Autre")
	dem1 := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &acme)
	f.seedDemandeur(t, "dem-2", "dem2@acme.fr", &acme)

	maj, err := f.demandeurUC.Update(ctx, dem1, "dem-2", dto.UpdateDemandeurRequest{
		SocieteID: &autre,
	})
	require.NoError(t, err)
	require.NotNil(t, maj.SocieteID)
	assert.Equal(t, acme, *maj.SocieteID, "un demandeur ne déplace pas un compte de société")

	maj, err = f.demandeurUC.Update(ctx, agentCaller(), "dem-2", dto.UpdateDemandeurRequest{
		SocieteID: &autre,
	})
	require.NoError(t, err)
	require.NotNil(t, maj.SocieteID)
	assert.Equal(t, autre, *maj.SocieteID)
}

func TestDemandeurUpdate_EmailRevalideHorsSoiMeme(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.seedDemandeur(t, "dem-1", "dem1@acme.fr", nil)
	f.seedDemandeur(t, "dem-2", "dem2@acme.fr", nil)

	// Reposter son propre email: pas de conflit.
	_, err := f.demandeurUC.Update(ctx, agentCaller(), "dem-1", dto.UpdateDemandeurRequest{
		Email: ptr("dem1@acme.fr"),
	})
	assert.NoError(t, err)

	// Prendre l'email de l'autre: conflit.
	_, err = f.demandeurUC.Update(ctx, agentCaller(), "dem-1", dto.UpdateDemandeurRequest{
		Email: ptr("dem2@acme.fr"),
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

// Un demandeur ne peut pas supprimer son propre compte; il peut supprimer un
// collègue de sa société mais pas un compte d'une autre société.
func TestDemandeurDelete_AutoSuppressionInterdite(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	autre := f.seedSociete(t, "soc-autre", "Autre")
	dem1 := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &acme)
	f.seedDemandeur(t, "dem-2", "dem2@acme.fr", &acme)
	f.seedDemandeur(t, "dem-3", "dem3@autre.fr", &autre)

	err := f.demandeurUC.Delete(ctx, dem1, "dem-1")
	assert.ErrorIs(t, err, domain.ErrSelfDeletion)

	err = f.demandeurUC.Delete(ctx, dem1, "dem-3")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.NoError(t, f.demandeurUC.Delete(ctx, dem1, "dem-2"))

	// Un agent peut supprimer n'importe qui, y compris l'appelant d'origine.
	assert.NoError(t, f.demandeurUC.Delete(ctx, agentCaller(), "dem-1"))
}

// La liste vue par un demandeur est restreinte à sa société et le total
// reflète ce qui est réellement visible.
func TestDemandeurList_PerimetreEtTotal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	autre := f.seedSociete(t, "soc-autre", "Autre")
	dem1 := f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &acme)
	f.seedDemandeur(t, "dem-2", "dem2@acme.fr", &acme)
	f.seedDemandeur(t, "dem-3", "dem3@autre.fr", &autre)

	res, err := f.demandeurUC.List(ctx, dem1, dto.PageRequest{})
	require.NoError(t, err)
	ids := make([]string, 0, len(res.Data))
	for _, d := range res.Data {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []string{"dem-1", "dem-2"}, ids)
	assert.Equal(t, 2, res.Pagination.Total)

	tous, err := f.demandeurUC.List(ctx, agentCaller(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, tous.Pagination.Total)
}

// Le périmètre est appliqué avant la pagination: des collègues dont les
// fiches trient après une pleine page d'autres demandeurs restent visibles
// dès la première page, avec un total compté dans le périmètre.
func TestDemandeurList_PerimetreAvantPagination(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	acme := f.seedSociete(t, "soc-acme", "ACME")
	for i := 0; i < 25; i++ {
		f.seedDemandeur(t, fmt.Sprintf("dem-%02d", i), fmt.Sprintf("dem%02d@ailleurs.fr", i), nil)
	}
	// Ids choisis pour trier après les 25 fiches hors société.
	moi := f.seedDemandeur(t, "zz-dem-1", "moi@acme.fr", &acme)
	f.seedDemandeur(t, "zz-dem-2", "collegue@acme.fr", &acme)

	res, err := f.demandeurUC.List(ctx, moi, dto.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	ids := make([]string, 0, len(res.Data))
	for _, d := range res.Data {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []string{"zz-dem-1", "zz-dem-2"}, ids,
		"les collègues doivent apparaître en page 1 quel que soit leur rang global")
	assert.Equal(t, 2, res.Pagination.Total, "le total est compté dans le périmètre")

	// L'agent, lui, pagine sur la table entière.
	tous, err := f.demandeurUC.List(ctx, agentCaller(), dto.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, tous.Data, 20)
	assert.Equal(t, 27, tous.Pagination.Total)
}
