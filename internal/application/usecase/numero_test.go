package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

func TestGenererNumero_SixChiffres(t *testing.T) {
	jamais := func(context.Context, string) (bool, error) { return false, nil }

	numero, err := genererNumero(context.Background(), logger.NewNop(), jamais)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), numero,
		"le numéro doit faire exactement 6 chiffres, zéros de tête compris")
}

// Quand tout l'espace répond «pris», la boucle s'arrête à la borne et rend
// quand même un candidat au lieu de boucler sans fin.
func TestGenererNumero_PlafondDeCollisions_TermineQuandMeme(t *testing.T) {
	appels := 0
	toujoursPris := func(context.Context, string) (bool, error) {
		appels++
		return true, nil
	}

	numero, err := genererNumero(context.Background(), logger.NewNop(), toujoursPris)
	require.NoError(t, err)
	assert.Len(t, numero, 6)
	assert.Equal(t, 100, appels, "la boucle doit s'arrêter exactement à la borne")
}

func TestGenererNumero_ErreurDeLectureRemontee(t *testing.T) {
	boom := errors.New("base indisponible")
	enPanne := func(context.Context, string) (bool, error) { return false, boom }

	_, err := genererNumero(context.Background(), logger.NewNop(), enPanne)
	assert.ErrorIs(t, err, boom)
}
