package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jrossignol/voip-backoffice/internal/domain"
)

// isUniqueViolation vérifie si l'erreur est une violation de contrainte unique (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Tables de repli SQL, alignées caractère à caractère.
const (
	accentsSQL     = "àâäéèêëîïôöùûüçÀÂÄÉÈÊËÎÏÔÖÙÛÜÇ"
	sansAccentsSQL = "aaaeeeeiioouuucaaaeeeeiioouuuc"
)

// replier retourne l'expression SQL qui applique à une colonne le même repli
// que domain.ReplierRecherche (minuscules, accents français retirés). Le motif
// et la colonne passent tous deux par ce repli: «Portabilité» stocké et
// «portabilite» cherché se retrouvent.
func replier(col string) string {
	return "lower(translate(" + col + ", '" + accentsSQL + "', '" + sansAccentsSQL + "'))"
}

// motifRecherche construit le motif LIKE replié d'un terme utilisateur.
func motifRecherche(search string) string {
	return "%" + domain.ReplierRecherche(strings.TrimSpace(search)) + "%"
}
