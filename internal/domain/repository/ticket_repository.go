package repository

import (
	"context"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
)

// TicketRepository définit le port de persistance des tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	// NumeroExiste sert à la boucle de génération de numéro (détection de collision).
	NumeroExiste(ctx context.Context, numero string) (bool, error)
	List(ctx context.Context, p ListParams, scope Scope) ([]*entity.Ticket, int, error)
	Update(ctx context.Context, t *entity.Ticket) error
	Delete(ctx context.Context, id string) error
}
