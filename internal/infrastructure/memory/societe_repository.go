package memory

import (
	"context"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.SocieteRepository = (*SocieteRepo)(nil)

// SocieteRepo fake en mémoire du port SocieteRepository.
type SocieteRepo struct {
	mu       sync.RWMutex
	societes map[string]entity.Societe
}

// NewSocieteRepository construit un fake vide.
func NewSocieteRepository() *SocieteRepo {
	return &SocieteRepo{societes: map[string]entity.Societe{}}
}

func (r *SocieteRepo) Create(_ context.Context, s *entity.Societe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.societes {
		if (s.Siret != "" && ex.Siret == s.Siret) || (s.Domaine != "" && ex.Domaine == s.Domaine) {
			return domain.ErrConflict
		}
	}
	r.societes[s.ID] = *s
	return nil
}

func (r *SocieteRepo) GetByID(_ context.Context, id string) (*entity.Societe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.societes[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *SocieteRepo) GetBySiret(_ context.Context, siret string) (*entity.Societe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.societes {
		if s.Siret != "" && s.Siret == siret {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (r *SocieteRepo) GetByDomaine(_ context.Context, domaine string) (*entity.Societe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.societes {
		if s.Domaine != "" && s.Domaine == domaine {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (r *SocieteRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Societe, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.Societe
	for _, s := range r.societes {
		if contient(p.Search, s.Nom, s.Siret, s.Domaine) {
			s := s
			items = append(items, &s)
		}
	}
	trierParID(items, func(s *entity.Societe) string { return s.ID })
	page, total := paginer(items, p)
	return page, total, nil
}

func (r *SocieteRepo) Update(_ context.Context, s *entity.Societe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ex := range r.societes {
		if id == s.ID {
			continue
		}
		if (s.Siret != "" && ex.Siret == s.Siret) || (s.Domaine != "" && ex.Domaine == s.Domaine) {
			return domain.ErrConflict
		}
	}
	r.societes[s.ID] = *s
	return nil
}

func (r *SocieteRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.societes, id)
	return nil
}
