package dto

import "time"

// CreateAgentRequest création d'un agent (réservé aux agents).
type CreateAgentRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

// UpdateAgentRequest mise à jour partielle d'un agent.
type UpdateAgentRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Nom      *string `json:"nom"`
	Prenom   *string `json:"prenom"`
}

// AgentResponse représentation API d'un agent (sans hash).
type AgentResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
