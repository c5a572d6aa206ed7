package dto

import "time"

// CreatePortabiliteRequest création d'une demande de portabilité.
// Mêmes règles de demandeur de référence que pour les tickets.
type CreatePortabiliteRequest struct {
	ClientID      string     `json:"client_id"`
	DemandeurID   string     `json:"demandeur_id"`
	NumerosPortes string     `json:"numeros_portes"`
	Statut        string     `json:"statut"`
	DateDemandee  *time.Time `json:"date_demandee"`
}

// UpdatePortabiliteRequest mise à jour partielle d'une portabilité.
type UpdatePortabiliteRequest struct {
	ClientID      *string    `json:"client_id"`
	AgentID       *string    `json:"agent_id"`
	NumerosPortes *string    `json:"numeros_portes"`
	Statut        *string    `json:"statut"`
	DateDemandee  *time.Time `json:"date_demandee"`
	DateEffective *time.Time `json:"date_effective"`
}

// PortabiliteResponse représentation API d'une portabilité.
type PortabiliteResponse struct {
	ID            string     `json:"id"`
	Numero        string     `json:"numero"`
	ClientID      string     `json:"client_id"`
	DemandeurID   string     `json:"demandeur_id"`
	AgentID       *string    `json:"agent_id,omitempty"`
	NumerosPortes string     `json:"numeros_portes"`
	Statut        string     `json:"statut"`
	DateDemandee  *time.Time `json:"date_demandee,omitempty"`
	DateEffective *time.Time `json:"date_effective,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
