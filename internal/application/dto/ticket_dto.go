package dto

import "time"

// CreateTicketRequest création de ticket. DemandeurID est obligatoire pour un
// agent et ignoré pour un demandeur (forcé à l'appelant).
type CreateTicketRequest struct {
	Titre       string `json:"titre"`
	Description string `json:"description"`
	ClientID    string `json:"client_id"`
	DemandeurID string `json:"demandeur_id"`
	Statut      string `json:"statut"`
}

// UpdateTicketRequest mise à jour partielle d'un ticket. Les pointeurs nil
// laissent le champ inchangé.
type UpdateTicketRequest struct {
	Titre       *string `json:"titre"`
	Description *string `json:"description"`
	ClientID    *string `json:"client_id"`
	AgentID     *string `json:"agent_id"`
	Statut      *string `json:"statut"`
}

// TicketResponse représentation API d'un ticket.
type TicketResponse struct {
	ID          string     `json:"id"`
	Numero      string     `json:"numero"`
	Titre       string     `json:"titre"`
	Description string     `json:"description"`
	ClientID    string     `json:"client_id"`
	DemandeurID string     `json:"demandeur_id"`
	AgentID     *string    `json:"agent_id,omitempty"`
	Statut      string     `json:"statut"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}
