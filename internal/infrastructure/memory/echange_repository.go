package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.EchangeRepository = (*EchangeRepo)(nil)

// EchangeRepo fake en mémoire du port EchangeRepository.
type EchangeRepo struct {
	mu       sync.RWMutex
	echanges []entity.Echange
}

// NewEchangeRepository construit un fake vide.
func NewEchangeRepository() *EchangeRepo {
	return &EchangeRepo{}
}

func (r *EchangeRepo) Create(_ context.Context, e *entity.Echange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.echanges = append(r.echanges, *e)
	return nil
}

func (r *EchangeRepo) ListByParent(_ context.Context, parentType, parentID string) ([]*entity.Echange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Echange
	for _, e := range r.echanges {
		if e.ParentType == parentType && e.ParentID == parentID {
			e := e
			list = append(list, &e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}
