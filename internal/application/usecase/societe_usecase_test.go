package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
)

func TestSocieteCreate_UnicitesSiretEtDomaine(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.societeUC.Create(ctx, dto.CreateSocieteRequest{
		Nom: "ACME Télécom", Siret: "12345678900011", Domaine: "acme.fr",
	})
	require.NoError(t, err)

	_, err = f.societeUC.Create(ctx, dto.CreateSocieteRequest{
		Nom: "Copie", Siret: "12345678900011",
	})
	assert.ErrorIs(t, err, domain.ErrSiretExists)

	_, err = f.societeUC.Create(ctx, dto.CreateSocieteRequest{
		Nom: "Copie", Domaine: "acme.fr",
	})
	assert.ErrorIs(t, err, domain.ErrDomaineExists)

	// Deux sociétés sans SIRET ni domaine: pas de conflit sur les vides.
	_, err = f.societeUC.Create(ctx, dto.CreateSocieteRequest{Nom: "Sans Rien 1"})
	require.NoError(t, err)
	_, err = f.societeUC.Create(ctx, dto.CreateSocieteRequest{Nom: "Sans Rien 2"})
	assert.NoError(t, err, "les champs optionnels vides ne comptent pas dans l'unicité")
}

func TestSocieteCreate_DomaineInvalide(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cas := []string{
		"ab",              // trop court
		"sanspoint",       // pas de point
		"http://acme.fr",  // schéma interdit
		".acme.fr",        // commence par un séparateur
	}
	for _, domaine := range cas {
		_, err := f.societeUC.Create(ctx, dto.CreateSocieteRequest{
			Nom: "Test", Domaine: domaine,
		})
		assert.Error(t, err, "domaine %q doit être refusé", domaine)
	}
}

// La mise à jour revérifie l'unicité mais ne se conflictue pas avec soi-même.
func TestSocieteUpdate_UniciteSaufSoiMeme(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.societeUC.Create(ctx, dto.CreateSocieteRequest{Nom: "A", Siret: "11111111100011"})
	require.NoError(t, err)
	_, err = f.societeUC.Create(ctx, dto.CreateSocieteRequest{Nom: "B", Siret: "22222222200022"})
	require.NoError(t, err)

	// Reposter son propre SIRET: pas de conflit.
	_, err = f.societeUC.Update(ctx, a.ID, dto.UpdateSocieteRequest{Siret: ptr("11111111100011")})
	assert.NoError(t, err)

	// Prendre le SIRET de l'autre: conflit.
	_, err = f.societeUC.Update(ctx, a.ID, dto.UpdateSocieteRequest{Siret: ptr("22222222200022")})
	assert.ErrorIs(t, err, domain.ErrSiretExists)
}

// Suppression refusée tant qu'un demandeur est rattaché; société et demandeurs
// restent en place.
func TestSocieteDelete_RefuseeAvecMembres(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	societe, err := f.societeUC.Create(ctx, dto.CreateSocieteRequest{Nom: "ACME"})
	require.NoError(t, err)
	f.seedDemandeur(t, "dem-1", "dem1@acme.fr", &societe.ID)

	err = f.societeUC.Delete(ctx, societe.ID)
	assert.ErrorIs(t, err, domain.ErrSocieteHasMembers)

	toujours, err := f.societeUC.GetByID(ctx, societe.ID)
	require.NoError(t, err)
	assert.Equal(t, societe.ID, toujours.ID, "la société doit rester intacte")

	// Une fois le dernier membre parti, la suppression passe.
	require.NoError(t, f.demandeurs.Delete(ctx, "dem-1"))
	assert.NoError(t, f.societeUC.Delete(ctx, societe.ID))
}
