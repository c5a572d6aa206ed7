package dto

import "time"

// CreateSocieteRequest création d'une société (réservé aux agents).
type CreateSocieteRequest struct {
	Nom     string `json:"nom"`
	Siret   string `json:"siret"`
	Adresse string `json:"adresse"`
	Domaine string `json:"domaine"`
}

// UpdateSocieteRequest mise à jour partielle d'une société.
type UpdateSocieteRequest struct {
	Nom     *string `json:"nom"`
	Siret   *string `json:"siret"`
	Adresse *string `json:"adresse"`
	Domaine *string `json:"domaine"`
}

// SocieteResponse représentation API d'une société.
type SocieteResponse struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Siret     string    `json:"siret,omitempty"`
	Adresse   string    `json:"adresse"`
	Domaine   string    `json:"domaine,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
