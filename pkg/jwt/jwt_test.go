package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jrossignol/voip-backoffice/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testEmail  = "jean.dupont@exemple.fr"
	testID     = "00000000-0000-0000-0000-000000000001"
	testIssuer = "voip-backoffice-test"
)

func TestJWT_GenerateEtParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testID, pkgjwt.RoleDemandeur, testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testEmail, id.Email)
	assert.Equal(t, testID, id.ID)
	assert.Equal(t, pkgjwt.RoleDemandeur, id.Role)
}

// Les jetons historiques portent le rôle sous "type_utilisateur" au lieu de
// "type"; les deux formes doivent se normaliser en Identity.Role.
func TestJWT_ClaimHistoriqueTypeUtilisateur(t *testing.T) {
	now := time.Now()
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testEmail,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:          testID,
		TypeUtilisateur: pkgjwt.RoleAgent,
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.RoleAgent, id.Role,
		"le claim type_utilisateur doit être accepté comme rôle")
}

// Quand les deux claims sont présents, "type" l'emporte.
func TestJWT_TypePrimeSurTypeUtilisateur(t *testing.T) {
	now := time.Now()
	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   testEmail,
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:          testID,
		Type:            pkgjwt.RoleAgent,
		TypeUtilisateur: pkgjwt.RoleDemandeur,
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.RoleAgent, id.Role)
}

func TestJWT_SansRole_Erreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testID, "", testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un jeton sans claim de rôle doit être refusé")
}

func TestJWT_Expire_Erreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testID, pkgjwt.RoleAgent, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un jeton expiré doit être refusé")
}

func TestJWT_MauvaisSecret_Erreur(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testID, pkgjwt.RoleAgent, testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("autre-secret-totalement-different", tok)
	assert.Error(t, err, "une signature d'un autre secret doit invalider le jeton")
}

func TestJWT_SecretVide_Erreur(t *testing.T) {
	_, err := pkgjwt.Generate("", testEmail, testID, pkgjwt.RoleAgent, testIssuer, 24)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "peu.importe.ici")
	assert.Error(t, err)
}
