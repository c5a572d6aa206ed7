package dto

import "time"

// CreateClientRequest création d'un client (contact de facturation).
type CreateClientRequest struct {
	NomSociete string `json:"nom_societe"`
	NomContact string `json:"nom_contact"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	Adresse    string `json:"adresse"`
}

// UpdateClientRequest mise à jour partielle d'un client.
type UpdateClientRequest struct {
	NomSociete *string `json:"nom_societe"`
	NomContact *string `json:"nom_contact"`
	Email      *string `json:"email"`
	Telephone  *string `json:"telephone"`
	Adresse    *string `json:"adresse"`
}

// ClientResponse représentation API d'un client.
type ClientResponse struct {
	ID         string    `json:"id"`
	NomSociete string    `json:"nom_societe"`
	NomContact string    `json:"nom_contact"`
	Email      string    `json:"email"`
	Telephone  string    `json:"telephone"`
	Adresse    string    `json:"adresse"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
