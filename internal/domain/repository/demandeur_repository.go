package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// DemandeurRepository définit le port de persistance des demandeurs.
// GetByID et GetByEmail existent tous les deux: le résolveur de tenant est
// appelé tantôt avec l'id du jeton, tantôt avec son email.
type DemandeurRepository interface {
	Create(ctx context.Context, d *entity.Demandeur) error
	GetByID(ctx context.Context, id string) (*entity.Demandeur, error)
	GetByEmail(ctx context.Context, email string) (*entity.Demandeur, error)
	// List retourne les demandeurs du périmètre: pour un scope de demandeur,
	// le filtre porte sur l'id de la fiche elle-même et le total est compté
	// dans le périmètre.
	List(ctx context.Context, p ListParams, scope Scope) ([]*entity.Demandeur, int, error)
	// ListIDsBySociete retourne les ids des demandeurs rattachés à la société.
	ListIDsBySociete(ctx context.Context, societeID string) ([]string, error)
	// CountBySociete sert à l'invariant de suppression de société.
	CountBySociete(ctx context.Context, societeID string) (int, error)
	Update(ctx context.Context, d *entity.Demandeur) error
	Delete(ctx context.Context, id string) error
}
