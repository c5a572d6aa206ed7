package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// SocieteRepository définit le port de persistance des sociétés (tenants).
type SocieteRepository interface {
	Create(ctx context.Context, s *entity.Societe) error
	GetByID(ctx context.Context, id string) (*entity.Societe, error)
	// GetBySiret et GetByDomaine servent aux contrôles d'unicité avant insert/update.
	GetBySiret(ctx context.Context, siret string) (*entity.Societe, error)
	GetByDomaine(ctx context.Context, domaine string) (*entity.Societe, error)
	List(ctx context.Context, p ListParams) ([]*entity.Societe, int, error)
	Update(ctx context.Context, s *entity.Societe) error
	Delete(ctx context.Context, id string) error
}
