package entity

import "time"

// Statuts de production et de tâche de production.
const (
	ProductionNouveau = "nouveau"
	ProductionEnCours = "en_cours"
	ProductionAttente = "attente"
	ProductionTermine = "termine"
	ProductionBloque  = "bloque"
)

// Priorités de production.
const (
	PrioriteBasse   = "basse"
	PrioriteNormale = "normale"
	PrioriteHaute   = "haute"
	PrioriteUrgente = "urgente"
)

// Production est un dossier de mise en production interne, composé de tâches ordonnées.
type Production struct {
	ID          string
	Numero      string
	Titre       string
	ClientID    string
	DemandeurID string
	SocieteID   *string
	AgentID     *string
	Priorite    string
	Statut      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Taches      []ProductionTache
}

// ProductionTache est une sous-tâche ordonnée d'une production, avec son propre statut.
type ProductionTache struct {
	ID           string
	ProductionID string
	Ordre        int
	Libelle      string
	Statut       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
