package dto

import "time"

// CreateDemandeurRequest création d'un demandeur.
type CreateDemandeurRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Nom       string  `json:"nom"`
	Prenom    string  `json:"prenom"`
	Telephone string  `json:"telephone"`
	SocieteID *string `json:"societe_id"`
}

// UpdateDemandeurRequest mise à jour partielle d'un demandeur.
// Password non nil remplace le mot de passe (re-hashé).
type UpdateDemandeurRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Nom       *string `json:"nom"`
	Prenom    *string `json:"prenom"`
	Telephone *string `json:"telephone"`
	SocieteID *string `json:"societe_id"`
}

// DemandeurResponse représentation API d'un demandeur (sans hash).
type DemandeurResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nom       string    `json:"nom"`
	Prenom    string    `json:"prenom"`
	Telephone string    `json:"telephone"`
	SocieteID *string   `json:"societe_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
