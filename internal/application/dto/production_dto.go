package dto

import "time"

// CreateProductionRequest création d'une production avec ses tâches initiales
// ordonnées. L'insertion des tâches suit celle de la production sans
// transaction: un échec partiel laisse les tâches déjà insérées.
type CreateProductionRequest struct {
	Titre       string   `json:"titre"`
	ClientID    string   `json:"client_id"`
	DemandeurID string   `json:"demandeur_id"`
	Priorite    string   `json:"priorite"`
	Statut      string   `json:"statut"`
	Taches      []string `json:"taches"` // libellés, dans l'ordre
}

// UpdateProductionRequest mise à jour partielle d'une production.
type UpdateProductionRequest struct {
	Titre    *string `json:"titre"`
	ClientID *string `json:"client_id"`
	AgentID  *string `json:"agent_id"`
	Priorite *string `json:"priorite"`
	Statut   *string `json:"statut"`
}

// UpdateTacheRequest mise à jour d'une tâche de production.
type UpdateTacheRequest struct {
	Libelle *string `json:"libelle"`
	Ordre   *int    `json:"ordre"`
	Statut  *string `json:"statut"`
}

// TacheResponse représentation API d'une tâche.
type TacheResponse struct {
	ID           string    `json:"id"`
	ProductionID string    `json:"production_id"`
	Ordre        int       `json:"ordre"`
	Libelle      string    `json:"libelle"`
	Statut       string    `json:"statut"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductionResponse représentation API d'une production avec ses tâches.
type ProductionResponse struct {
	ID          string          `json:"id"`
	Numero      string          `json:"numero"`
	Titre       string          `json:"titre"`
	ClientID    string          `json:"client_id"`
	DemandeurID string          `json:"demandeur_id"`
	SocieteID   *string         `json:"societe_id,omitempty"`
	AgentID     *string         `json:"agent_id,omitempty"`
	Priorite    string          `json:"priorite"`
	Statut      string          `json:"statut"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Taches      []TacheResponse `json:"taches"`
}
