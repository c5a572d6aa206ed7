package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jrossignol/voip-backoffice/pkg/logger"
)

// maxTentativesNumero borne la boucle anti-collision de génération de numéro.
const maxTentativesNumero = 100

// genererNumero tire un numéro aléatoire à 6 chiffres et réessaie tant qu'il
// entre en collision avec un numéro déjà stocké. Au-delà de la borne, le
// dernier candidat est retourné même s'il peut entrer en collision: faiblesse
// héritée du comportement historique, signalée par un log warn et non corrigée
// ici (voir DESIGN.md). La boucle se termine toujours.
func genererNumero(ctx context.Context, log *logger.Logger, existe func(context.Context, string) (bool, error)) (string, error) {
	var numero string
	for i := 0; i < maxTentativesNumero; i++ {
		numero = fmt.Sprintf("%06d", rand.Intn(1000000))
		taken, err := existe(ctx, numero)
		if err != nil {
			return "", err
		}
		if !taken {
			return numero, nil
		}
	}
	log.Warn().
		Str("numero", numero).
		Int("tentatives", maxTentativesNumero).
		Msg("génération de numéro: plafond de collisions atteint, numéro possiblement dupliqué")
	return numero, nil
}
