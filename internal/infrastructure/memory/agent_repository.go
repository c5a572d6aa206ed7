package memory

import (
	"context"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo fake en mémoire du port AgentRepository.
type AgentRepo struct {
	mu     sync.RWMutex
	agents map[string]entity.Agent
}

// NewAgentRepository construit un fake vide.
func NewAgentRepository() *AgentRepo {
	return &AgentRepo{agents: map[string]entity.Agent{}}
}

func (r *AgentRepo) Create(_ context.Context, a *entity.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.agents {
		if ex.Email == a.Email {
			return domain.ErrEmailExists
		}
	}
	r.agents[a.ID] = *a
	return nil
}

func (r *AgentRepo) GetByID(_ context.Context, id string) (*entity.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.agents[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *AgentRepo) GetByEmail(_ context.Context, email string) (*entity.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.agents {
		if a.Email == email {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AgentRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Agent, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.Agent
	for _, a := range r.agents {
		if contient(p.Search, a.Nom, a.Prenom, a.Email) {
			a := a
			items = append(items, &a)
		}
	}
	trierParID(items, func(a *entity.Agent) string { return a.ID })
	page, total := paginer(items, p)
	return page, total, nil
}

func (r *AgentRepo) Update(_ context.Context, a *entity.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ex := range r.agents {
		if id != a.ID && ex.Email == a.Email {
			return domain.ErrEmailExists
		}
	}
	r.agents[a.ID] = *a
	return nil
}

func (r *AgentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.agents, id)
	return nil
}
