package memory

import (
	"context"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo fake en mémoire du port ClientRepository.
type ClientRepo struct {
	mu      sync.RWMutex
	clients map[string]entity.Client
}

// NewClientRepository construit un fake vide.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{clients: map[string]entity.Client{}}
}

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *ClientRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Client, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.Client
	for _, c := range r.clients {
		if contient(p.Search, c.NomSociete, c.NomContact, c.Email) {
			c := c
			items = append(items, &c)
		}
	}
	trierParID(items, func(c *entity.Client) string { return c.ID })
	page, total := paginer(items, p)
	return page, total, nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, id)
	return nil
}
