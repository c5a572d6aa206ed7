package entity

import "time"

// Agent représente un utilisateur interne avec accès global à tous les tenants.
// Jamais de soft-delete: la suppression est définitive.
type Agent struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair après persistance
	Nom          string
	Prenom       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
