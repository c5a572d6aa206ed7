package entity

import "time"

// Statuts de portabilité.
const (
	PortabiliteNouveau = "nouveau"
	PortabiliteDemande = "demande"
	PortabiliteEnCours = "en_cours"
	PortabiliteValide  = "valide"
	PortabiliteTermine = "termine"
	PortabiliteBloque  = "bloque"
	PortabiliteRejete  = "rejete"
)

// Portabilite est une demande de portage de numéros téléphoniques.
type Portabilite struct {
	ID            string
	Numero        string // unique parmi les portabilités non supprimées
	ClientID      string
	DemandeurID   string
	AgentID       *string
	NumerosPortes string // numéros à porter, séparés par des virgules
	Statut        string
	DateDemandee  *time.Time
	DateEffective *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
