package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// AgentRepository définit le port de persistance des agents (DIP).
// L'implémentation vit dans infrastructure.
type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	GetByID(ctx context.Context, id string) (*entity.Agent, error)
	GetByEmail(ctx context.Context, email string) (*entity.Agent, error)
	List(ctx context.Context, p ListParams) ([]*entity.Agent, int, error)
	Update(ctx context.Context, agent *entity.Agent) error
	Delete(ctx context.Context, id string) error
}
