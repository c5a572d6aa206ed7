package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo fake en mémoire du port ProductionRepository.
type ProductionRepo struct {
	mu          sync.RWMutex
	productions map[string]entity.Production
	taches      map[string]entity.ProductionTache
}

// NewProductionRepository construit un fake vide.
func NewProductionRepository() *ProductionRepo {
	return &ProductionRepo{
		productions: map[string]entity.Production{},
		taches:      map[string]entity.ProductionTache{},
	}
}

func (r *ProductionRepo) Create(_ context.Context, p *entity.Production) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stocke := *p
	stocke.Taches = nil
	r.productions[p.ID] = stocke
	return nil
}

func (r *ProductionRepo) GetByID(ctx context.Context, id string) (*entity.Production, error) {
	r.mu.RLock()
	p, ok := r.productions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	taches, err := r.ListTaches(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, t := range taches {
		p.Taches = append(p.Taches, *t)
	}
	return &p, nil
}

func (r *ProductionRepo) NumeroExiste(_ context.Context, numero string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.productions {
		if p.Numero == numero {
			return true, nil
		}
	}
	return false, nil
}

func (r *ProductionRepo) List(_ context.Context, lp repository.ListParams, scope repository.Scope) ([]*entity.Production, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.Production
	for _, p := range r.productions {
		if scope.Autorise(p.DemandeurID) && contient(lp.Search, p.Titre, p.Numero) {
			p := p
			items = append(items, &p)
		}
	}
	trierParID(items, func(p *entity.Production) string { return p.ID })
	page, total := paginer(items, lp)
	return page, total, nil
}

func (r *ProductionRepo) Update(_ context.Context, p *entity.Production) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stocke := *p
	stocke.Taches = nil
	r.productions[p.ID] = stocke
	return nil
}

func (r *ProductionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.productions, id)
	for tid, t := range r.taches {
		if t.ProductionID == id {
			delete(r.taches, tid)
		}
	}
	return nil
}

func (r *ProductionRepo) CreateTache(_ context.Context, t *entity.ProductionTache) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taches[t.ID] = *t
	return nil
}

func (r *ProductionRepo) GetTacheByID(_ context.Context, id string) (*entity.ProductionTache, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.taches[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *ProductionRepo) ListTaches(_ context.Context, productionID string) ([]*entity.ProductionTache, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.ProductionTache
	for _, t := range r.taches {
		if t.ProductionID == productionID {
			t := t
			list = append(list, &t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Ordre < list[j].Ordre })
	return list, nil
}

func (r *ProductionRepo) UpdateTache(_ context.Context, t *entity.ProductionTache) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taches[t.ID] = *t
	return nil
}

func (r *ProductionRepo) DeleteTache(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.taches, id)
	return nil
}
