package entity

import "time"

// Demandeur représente un utilisateur côté client, rattaché à une société.
// Si SocieteID est nil, sa visibilité se réduit à ses propres ressources.
type Demandeur struct {
	ID           string
	Email        string
	PasswordHash string
	Nom          string
	Prenom       string
	Telephone    string
	SocieteID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
