package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// FichierRepository définit le port de persistance des pièces jointes.
// ListByParent ne charge pas le contenu base64 (métadonnées seules);
// GetByID retourne le fichier complet.
type FichierRepository interface {
	Create(ctx context.Context, f *entity.Fichier) error
	GetByID(ctx context.Context, id string) (*entity.Fichier, error)
	ListByParent(ctx context.Context, parentType, parentID string) ([]*entity.Fichier, error)
	Delete(ctx context.Context, id string) error
}
