package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// ProductionRepository définit le port de persistance des productions et de
// leurs tâches. L'insertion production + tâches initiales n'est pas atomique:
// un échec entre deux étapes laisse un état partiel que l'appelant tolère.
type ProductionRepository interface {
	Create(ctx context.Context, p *entity.Production) error
	GetByID(ctx context.Context, id string) (*entity.Production, error)
	NumeroExiste(ctx context.Context, numero string) (bool, error)
	List(ctx context.Context, lp ListParams, scope Scope) ([]*entity.Production, int, error)
	Update(ctx context.Context, p *entity.Production) error
	Delete(ctx context.Context, id string) error

	CreateTache(ctx context.Context, t *entity.ProductionTache) error
	GetTacheByID(ctx context.Context, id string) (*entity.ProductionTache, error)
	ListTaches(ctx context.Context, productionID string) ([]*entity.ProductionTache, error)
	UpdateTache(ctx context.Context, t *entity.ProductionTache) error
	DeleteTache(ctx context.Context, id string) error
}
