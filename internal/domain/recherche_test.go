package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrossignol/voip-backoffice/internal/domain"
)

func TestReplierRecherche(t *testing.T) {
	cas := []struct {
		entree  string
		attendu string
	}{
		{"", ""},
		{"Portabilité", "portabilite"},
		{"portabilite", "portabilite"},
		{"TÉLÉPHONIE Fixe", "telephonie fixe"},
		{"Müller", "muller"},
		{"Çà et là", "ca et la"},
		{"0612345678", "0612345678"},
	}
	for _, c := range cas {
		assert.Equal(t, c.attendu, domain.ReplierRecherche(c.entree), "entrée %q", c.entree)
	}
}
