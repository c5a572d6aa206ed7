package memory

import (
	"context"
	"sync"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo fake en mémoire du port TicketRepository.
type TicketRepo struct {
	mu      sync.RWMutex
	tickets map[string]entity.Ticket
}

// NewTicketRepository construit un fake vide.
func NewTicketRepository() *TicketRepo {
	return &TicketRepo{tickets: map[string]entity.Ticket{}}
}

func (r *TicketRepo) Create(_ context.Context, t *entity.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID] = *t
	return nil
}

func (r *TicketRepo) GetByID(_ context.Context, id string) (*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tickets[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *TicketRepo) NumeroExiste(_ context.Context, numero string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tickets {
		if t.Numero == numero {
			return true, nil
		}
	}
	return false, nil
}

func (r *TicketRepo) List(_ context.Context, p repository.ListParams, scope repository.Scope) ([]*entity.Ticket, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entity.Ticket
	for _, t := range r.tickets {
		if scope.Autorise(t.DemandeurID) && contient(p.Search, t.Titre, t.Numero) {
			t := t
			items = append(items, &t)
		}
	}
	trierParID(items, func(t *entity.Ticket) string { return t.ID })
	page, total := paginer(items, p)
	return page, total, nil
}

func (r *TicketRepo) Update(_ context.Context, t *entity.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[t.ID] = *t
	return nil
}

func (r *TicketRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tickets, id)
	return nil
}
