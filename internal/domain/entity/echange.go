package entity

import "time"

// Types de parent d'un échange ou d'une pièce jointe.
const (
	ParentTicket          = "ticket"
	ParentPortabilite     = "portabilite"
	ParentProductionTache = "production_tache"
)

// Types d'auteur d'un échange.
const (
	AuteurAgent     = "agent"
	AuteurDemandeur = "demandeur"
)

// Echange est une entrée de fil de discussion attachée à un ticket, une
// portabilité ou une tâche de production. Append-only: l'auteur est figé
// à la création.
type Echange struct {
	ID         string
	ParentType string
	ParentID   string
	AuteurID   string
	AuteurType string // agent | demandeur
	Message    string
	CreatedAt  time.Time
}
