package memory

import (
	"context"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.PortabiliteRepository = (*PortabiliteRepo)(nil)

// PortabiliteRepo fake en mémoire du port PortabiliteRepository.
type PortabiliteRepo struct {
	mu           sync.RWMutex
	portabilites map[string]entity.Portabilite
}

// NewPortabiliteRepository construit un fake vide.
func NewPortabiliteRepository() *PortabiliteRepo {
	return &PortabiliteRepo{portabilites: map[string]entity.Portabilite{}}
}

func (r *PortabiliteRepo) Create(_ context.Context, p *entity.Portabilite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.portabilites[p.ID] = *p
	return nil
}

func (r *PortabiliteRepo) GetByID(_ context.Context, id string) (*entity.Portabilite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.portabilites[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *PortabiliteRepo) NumeroExiste(_ context.Context, numero string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.portabilites {
		if p.Numero == numero {
			return true, nil
		}
	}
	return false, nil
}

func (r *PortabiliteRepo) List(_ context.Context, lp repository.ListParams, scope repository.Scope) ([]*entity.Portabilite, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.Portabilite
	for _, p := range r.portabilites {
		if scope.Autorise(p.DemandeurID) && contient(lp.Search, p.Numero, p.NumerosPortes) {
			p := p
			items = append(items, &p)
		}
	}
	trierParID(items, func(p *entity.Portabilite) string { return p.ID })
	page, total := paginer(items, lp)
	return page, total, nil
}

func (r *PortabiliteRepo) Update(_ context.Context, p *entity.Portabilite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.portabilites[p.ID] = *p
	return nil
}

func (r *PortabiliteRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.portabilites, id)
	return nil
}
