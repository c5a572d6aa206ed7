package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var replieur = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ReplierRecherche normalise un terme de recherche plein-texte: accents
// retirés puis minuscules. Chaque backend de persistance doit appliquer le
// même repli aux DEUX côtés de la comparaison, valeur stockée comprise, pour
// que «Portabilité» et «portabilite» se retrouvent.
func ReplierRecherche(s string) string {
	out, _, err := transform.String(replieur, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
