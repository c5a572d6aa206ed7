package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.DemandeurRepository = (*DemandeurRepo)(nil)

// DemandeurRepo fake en mémoire du port DemandeurRepository.
type DemandeurRepo struct {
	mu         sync.RWMutex
	demandeurs map[string]entity.Demandeur
}

// NewDemandeurRepository construit un fake vide.
func NewDemandeurRepository() *DemandeurRepo {
	return &DemandeurRepo{demandeurs: map[string]entity.Demandeur{}}
}

func (r *DemandeurRepo) Create(_ context.Context, d *entity.Demandeur) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.demandeurs {
		if ex.Email == d.Email {
			return domain.ErrEmailExists
		}
	}
	r.demandeurs[d.ID] = *d
	return nil
}

func (r *DemandeurRepo) GetByID(_ context.Context, id string) (*entity.Demandeur, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.demandeurs[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *DemandeurRepo) GetByEmail(_ context.Context, email string) (*entity.Demandeur, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.demandeurs {
		if d.Email == email {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (r *DemandeurRepo) List(_ context.Context, p repository.ListParams, scope repository.Scope) ([]*entity.Demandeur, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.Demandeur
	for _, d := range r.demandeurs {
		if scope.Autorise(d.ID) && contient(p.Search, d.Nom, d.Prenom, d.Email) {
			d := d
			items = append(items, &d)
		}
	}
	trierParID(items, func(d *entity.Demandeur) string { return d.ID })
	page, total := paginer(items, p)
	return page, total, nil
}

func (r *DemandeurRepo) ListIDsBySociete(_ context.Context, societeID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for _, d := range r.demandeurs {
		if d.SocieteID != nil && *d.SocieteID == societeID {
			ids = append(ids, d.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *DemandeurRepo) CountBySociete(_ context.Context, societeID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, d := range r.demandeurs {
		if d.SocieteID != nil && *d.SocieteID == societeID {
			n++
		}
	}
	return n, nil
}

func (r *DemandeurRepo) Update(_ context.Context, d *entity.Demandeur) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ex := range r.demandeurs {
		if id != d.ID && ex.Email == d.Email {
			return domain.ErrEmailExists
		}
	}
	r.demandeurs[d.ID] = *d
	return nil
}

func (r *DemandeurRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.demandeurs, id)
	return nil
}
