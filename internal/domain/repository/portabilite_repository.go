package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// PortabiliteRepository définit le port de persistance des portabilités.
type PortabiliteRepository interface {
	Create(ctx context.Context, p *entity.Portabilite) error
	GetByID(ctx context.Context, id string) (*entity.Portabilite, error)
	NumeroExiste(ctx context.Context, numero string) (bool, error)
	List(ctx context.Context, lp ListParams, scope Scope) ([]*entity.Portabilite, int, error)
	Update(ctx context.Context, p *entity.Portabilite) error
	Delete(ctx context.Context, id string) error
}
