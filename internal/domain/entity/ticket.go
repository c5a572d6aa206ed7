package entity

import "time"

// Statuts de ticket. Aucun graphe de transition n'est imposé: tout statut peut
// être écrit par un appelant autorisé; seul le changement déclenche une notification.
const (
	TicketNouveau = "nouveau"
	TicketEnCours = "en_cours"
	TicketAttente = "attente"
	TicketRepondu = "repondu"
	TicketResolu  = "resolu"
	TicketFerme   = "ferme"
)

// Ticket est une demande de support déposée contre un Client par un Demandeur.
// Numero est attribué une fois à la création et jamais réattribué.
type Ticket struct {
	ID          string
	Numero      string // 6 chiffres, unique parmi les tickets non supprimés
	Titre       string
	Description string
	ClientID    string
	DemandeurID string
	AgentID     *string
	Statut      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
}

// EstClos indique si le ticket est dans l'ensemble des statuts clos.
func (t *Ticket) EstClos() bool {
	return t.Statut == TicketResolu || t.Statut == TicketFerme
}
