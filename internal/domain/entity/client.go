package entity

import "time"

// Client est l'entité de facturation/contact contre laquelle tickets,
// portabilités et productions sont déposés. Visible par tous les rôles
// authentifiés: il n'appartient pas à un demandeur.
type Client struct {
	ID         string
	NomSociete string
	NomContact string
	Email      string
	Telephone  string
	Adresse    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
