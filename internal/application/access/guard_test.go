package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
)

func ptr(s string) *string { return &s }

// Table de décision complète du garde d'accès.
func TestCanAccess(t *testing.T) {
	societeA := ptr("societe-a")
	societeB := ptr("societe-b")

	cases := []struct {
		nom     string
		caller  access.Caller
		owner   access.Ownership
		attendu bool
	}{
		{
			nom:     "agent accède à tout",
			caller:  access.Caller{ID: "agent-1", Role: jwt.RoleAgent},
			owner:   access.Ownership{DemandeurID: "dem-1", SocieteID: societeA},
			attendu: true,
		},
		{
			nom:     "agent accède même sans société propriétaire",
			caller:  access.Caller{ID: "agent-1", Role: jwt.RoleAgent},
			owner:   access.Ownership{DemandeurID: "dem-1"},
			attendu: true,
		},
		{
			nom:     "demandeur accède à sa propre ressource",
			caller:  access.Caller{ID: "dem-1", Role: jwt.RoleDemandeur, SocieteID: societeA},
			owner:   access.Ownership{DemandeurID: "dem-1", SocieteID: societeA},
			attendu: true,
		},
		{
			nom:     "demandeur accède à la ressource d'un collègue de la même société",
			caller:  access.Caller{ID: "dem-1", Role: jwt.RoleDemandeur, SocieteID: societeA},
			owner:   access.Ownership{DemandeurID: "dem-2", SocieteID: societeA},
			attendu: true,
		},
		{
			nom:     "demandeur refusé sur une autre société",
			caller:  access.Caller{ID: "dem-1", Role: jwt.RoleDemandeur, SocieteID: societeA},
			owner:   access.Ownership{DemandeurID: "dem-3", SocieteID: societeB},
			attendu: false,
		},
		{
			nom:     "demandeur sans société refusé sur la ressource d'autrui",
			caller:  access.Caller{ID: "dem-1", Role: jwt.RoleDemandeur},
			owner:   access.Ownership{DemandeurID: "dem-2", SocieteID: societeA},
			attendu: false,
		},
		{
			nom:     "demandeur sans société accède à sa propre ressource",
			caller:  access.Caller{ID: "dem-1", Role: jwt.RoleDemandeur},
			owner:   access.Ownership{DemandeurID: "dem-1"},
			attendu: true,
		},
		{
			nom:     "propriétaire sans société refusé même pour un collègue de société",
			caller:  access.Caller{ID: "dem-1", Role: jwt.RoleDemandeur, SocieteID: societeA},
			owner:   access.Ownership{DemandeurID: "dem-2"},
			attendu: false,
		},
		{
			nom:     "rôle inconnu refusé",
			caller:  access.Caller{ID: "x", Role: "superviseur"},
			owner:   access.Ownership{DemandeurID: "x"},
			attendu: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.nom, func(t *testing.T) {
			assert.Equal(t, tc.attendu, access.CanAccess(tc.caller, tc.owner))
		})
	}
}

func TestScopeOf(t *testing.T) {
	agent := access.Caller{ID: "agent-1", Role: jwt.RoleAgent}
	scope := access.ScopeOf(agent, nil)
	assert.True(t, scope.All, "le périmètre d'un agent est global")
	assert.True(t, scope.Autorise("n-importe-qui"))

	dem := access.Caller{ID: "dem-1", Role: jwt.RoleDemandeur}
	scope = access.ScopeOf(dem, []string{"dem-1", "dem-2"})
	assert.False(t, scope.All)
	assert.True(t, scope.Autorise("dem-1"))
	assert.True(t, scope.Autorise("dem-2"))
	assert.False(t, scope.Autorise("dem-3"))
}
