package dto

import "time"

// CreateEchangeRequest ajout d'un message au fil d'un ticket, d'une
// portabilité ou d'une tâche. L'auteur est déduit de l'appelant; il n'est
// jamais pris du corps de la requête.
type CreateEchangeRequest struct {
	Message string `json:"message"`
}

// EchangeResponse représentation API d'un échange.
type EchangeResponse struct {
	ID         string    `json:"id"`
	ParentType string    `json:"parent_type"`
	ParentID   string    `json:"parent_id"`
	AuteurID   string    `json:"auteur_id"`
	AuteurType string    `json:"auteur_type"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
