package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.FichierRepository = (*FichierRepo)(nil)

// FichierRepo fake en mémoire du port FichierRepository. Comme l'adaptateur
// PostgreSQL, ListByParent omet le contenu base64.
type FichierRepo struct {
	mu       sync.RWMutex
	fichiers map[string]entity.Fichier
}

// NewFichierRepository construit un fake vide.
func NewFichierRepository() *FichierRepo {
	return &FichierRepo{fichiers: map[string]entity.Fichier{}}
}

func (r *FichierRepo) Create(_ context.Context, f *entity.Fichier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fichiers[f.ID] = *f
	return nil
}

func (r *FichierRepo) GetByID(_ context.Context, id string) (*entity.Fichier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.fichiers[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (r *FichierRepo) ListByParent(_ context.Context, parentType, parentID string) ([]*entity.Fichier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Fichier
	for _, f := range r.fichiers {
		if f.ParentType == parentType && f.ParentID == parentID {
			f := f
			f.ContenuBase64 = ""
			list = append(list, &f)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (r *FichierRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.fichiers, id)
	return nil
}
