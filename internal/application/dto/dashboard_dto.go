package dto

// DashboardResponse agrégation de comptes par statut pour le tableau de bord.
// Degraded vaut true quand les données proviennent du jeu de repli (base
// indisponible) et non de la base.
type DashboardResponse struct {
	Tickets      map[string]int `json:"tickets"`
	Portabilites map[string]int `json:"portabilites"`
	Productions  map[string]int `json:"productions"`
	Degraded     bool           `json:"degraded,omitempty"`
}
