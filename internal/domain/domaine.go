package domain

import (
	"regexp"
	"strings"
)

var domaineRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.-]*[a-zA-Z0-9]$`)

// ValiderDomaine vérifie le format d'un nom de domaine de société.
// Règles: longueur minimale 4, au moins un point, pas de "http", et
// caractères alphanumériques/points/tirets sans ponctuation en bord.
// Une chaîne vide est acceptée (champ optionnel).
func ValiderDomaine(domaine string) error {
	if domaine == "" {
		return nil
	}
	if len(domaine) < 4 {
		return ErrValidation
	}
	if !strings.Contains(domaine, ".") {
		return ErrValidation
	}
	if strings.Contains(strings.ToLower(domaine), "http") {
		return ErrValidation
	}
	if !domaineRe.MatchString(domaine) {
		return ErrValidation
	}
	return nil
}
