package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// EchangeRepository définit le port de persistance des échanges (append-only,
// aucune mise à jour ni suppression).
type EchangeRepository interface {
	Create(ctx context.Context, e *entity.Echange) error
	ListByParent(ctx context.Context, parentType, parentID string) ([]*entity.Echange, error)
}
