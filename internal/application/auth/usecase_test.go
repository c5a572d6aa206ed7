package auth_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jrossignol/voip-backoffice/internal/application/auth"
	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/infrastructure/memory"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuth(t *testing.T) (*auth.UseCase, *memory.AgentRepo, *memory.DemandeurRepo) {
	t.Helper()
	agents := memory.NewAgentRepository()
	demandeurs := memory.NewDemandeurRepository()
	uc := auth.NewUseCase(agents, demandeurs, auth.JWTConfig{
		Secret: testSecret, ExpHours: 24, Issuer: "voip-backoffice-test",
	})
	return uc, agents, demandeurs
}

func hashDe(t *testing.T, motDePasse string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(motDePasse), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Agent(t *testing.T) {
	uc, agents, _ := newAuth(t)
	now := time.Now()
	require.NoError(t, agents.Create(context.Background(), &entity.Agent{
		ID: "agent-1", Email: "agent@voipservices.fr", PasswordHash: hashDe(t, "secret12"),
		Nom: "Durand", CreatedAt: now, UpdatedAt: now,
	}))

	res, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "agent@voipservices.fr", Password: "secret12",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, jwt.RoleAgent, res.User.Role)

	identity, err := jwt.Parse(testSecret, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", identity.ID)
	assert.Equal(t, jwt.RoleAgent, identity.Role)
}

func TestLogin_DemandeurAvecSociete(t *testing.T) {
	uc, _, demandeurs := newAuth(t)
	now := time.Now()
	societe := "soc-acme"
	require.NoError(t, demandeurs.Create(context.Background(), &entity.Demandeur{
		ID: "dem-1", Email: "dem1@acme.fr", PasswordHash: hashDe(t, "secret12"),
		Nom: "Martin", SocieteID: &societe, CreatedAt: now, UpdatedAt: now,
	}))

	res, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "dem1@acme.fr", Password: "secret12",
	})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleDemandeur, res.User.Role)
	require.NotNil(t, res.User.SocieteID)
	assert.Equal(t, societe, *res.User.SocieteID)
}

// Les noms de champs JSON de la réponse de login font partie du contrat avec
// le front: accessToken et tokenType en camelCase.
func TestLogin_NomsDeChampsJSON(t *testing.T) {
	uc, agents, _ := newAuth(t)
	now := time.Now()
	require.NoError(t, agents.Create(context.Background(), &entity.Agent{
		ID: "agent-1", Email: "agent@voipservices.fr", PasswordHash: hashDe(t, "secret12"),
		Nom: "Durand", CreatedAt: now, UpdatedAt: now,
	}))

	res, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "agent@voipservices.fr", Password: "secret12",
	})
	require.NoError(t, err)

	brut, err := json.Marshal(res)
	require.NoError(t, err)
	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(brut, &wire))
	assert.Contains(t, wire, "accessToken")
	assert.Contains(t, wire, "tokenType")
	assert.Contains(t, wire, "user")
	assert.NotContains(t, wire, "access_token")
	assert.NotContains(t, wire, "token_type")
}

// Email inconnu et mot de passe erroné produisent la même erreur: pas
// d'oracle d'existence de compte.
func TestLogin_IdentifiantsInvalides(t *testing.T) {
	uc, _, demandeurs := newAuth(t)
	now := time.Now()
	require.NoError(t, demandeurs.Create(context.Background(), &entity.Demandeur{
		ID: "dem-1", Email: "dem1@acme.fr", PasswordHash: hashDe(t, "secret12"),
		Nom: "Martin", CreatedAt: now, UpdatedAt: now,
	}))

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "inconnu@acme.fr", Password: "secret12",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "dem1@acme.fr", Password: "mauvais",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un même email côté agent et côté demandeur: l'agent gagne (ordre de
// recherche), le mot de passe vérifié est donc le sien.
func TestLogin_AgentPrioritaireSurDemandeur(t *testing.T) {
	uc, agents, demandeurs := newAuth(t)
	now := time.Now()
	require.NoError(t, agents.Create(context.Background(), &entity.Agent{
		ID: "agent-1", Email: "double@voipservices.fr", PasswordHash: hashDe(t, "cote-agent"),
		Nom: "Durand", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, demandeurs.Create(context.Background(), &entity.Demandeur{
		ID: "dem-1", Email: "double@voipservices.fr", PasswordHash: hashDe(t, "cote-demandeur"),
		Nom: "Martin", CreatedAt: now, UpdatedAt: now,
	}))

	res, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "double@voipservices.fr", Password: "cote-agent",
	})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAgent, res.User.Role)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "double@voipservices.fr", Password: "cote-demandeur",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
