package entity

import "time"

// Societe est le tenant: l'organisation à laquelle appartiennent les demandeurs.
// Supprimable uniquement quand plus aucun demandeur ne la référence.
type Societe struct {
	ID        string
	Nom       string
	Siret     string // optionnel, unique parmi les sociétés quand renseigné
	Adresse   string
	Domaine   string // optionnel, unique; validé par ValiderDomaine
	CreatedAt time.Time
	UpdatedAt time.Time
}
