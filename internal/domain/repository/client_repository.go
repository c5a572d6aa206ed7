package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// ClientRepository définit le port de persistance des clients (contacts de facturation).
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, p ListParams) ([]*entity.Client, int, error)
	Update(ctx context.Context, c *entity.Client) error
	Delete(ctx context.Context, id string) error
}
