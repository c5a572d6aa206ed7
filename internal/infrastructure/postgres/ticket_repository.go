package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implémentation PostgreSQL du port TicketRepository.
type TicketRepo struct {
	pool *pgxpool.Pool
}

// NewTicketRepository construit l'adaptateur de persistance des tickets.
func NewTicketRepository(pool *pgxpool.Pool) *TicketRepo {
	return &TicketRepo{pool: pool}
}

const ticketColonnes = `id, numero, titre, description, client_id, demandeur_id, agent_id, statut, created_at, updated_at, closed_at`

// Create persiste un nouveau ticket.
func (r *TicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	const query = `
		INSERT INTO tickets (id, numero, titre, description, client_id, demandeur_id, agent_id, statut, created_at, updated_at, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Numero, t.Titre, t.Description, t.ClientID, t.DemandeurID, t.AgentID,
		t.Statut, t.CreatedAt, t.UpdatedAt, t.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID retourne un ticket par id, nil si absent.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	var t entity.Ticket
	err := r.pool.QueryRow(ctx, `SELECT `+ticketColonnes+` FROM tickets WHERE id = $1`, id).Scan(
		&t.ID, &t.Numero, &t.Titre, &t.Description, &t.ClientID, &t.DemandeurID, &t.AgentID,
		&t.Statut, &t.CreatedAt, &t.UpdatedAt, &t.ClosedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// NumeroExiste indique si un numéro est déjà porté par un ticket.
func (r *TicketRepo) NumeroExiste(ctx context.Context, numero string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE numero = $1)`, numero).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("numéro ticket existe: %w", err)
	}
	return exists, nil
}

// List retourne les tickets du périmètre, paginés avec le total. Le scope est
// appliqué en SQL: un agent voit tout, un demandeur voit les demandeurs de son
// périmètre (jamais de liste vide passée à ANY: un scope sans id ne voit rien).
func (r *TicketRepo) List(ctx context.Context, p repository.ListParams, scope repository.Scope) ([]*entity.Ticket, int, error) {
	motif := motifRecherche(p.Search)
	ids := scope.DemandeurIDs
	if ids == nil {
		ids = []string{}
	}

	filtre := `
		WHERE ($1 OR demandeur_id = ANY($2))
		  AND ($3 = '%%' OR ` + replier("titre") + ` LIKE $3 OR numero LIKE $3)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM tickets`+filtre, scope.All, ids, motif).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tickets: %w", err)
	}

	query := `SELECT ` + ticketColonnes + ` FROM tickets` + filtre + `
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, scope.All, ids, motif, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.Numero, &t.Titre, &t.Description, &t.ClientID, &t.DemandeurID, &t.AgentID,
			&t.Statut, &t.CreatedAt, &t.UpdatedAt, &t.ClosedAt); err != nil {
			return nil, 0, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}

// Update met à jour un ticket existant. Le numéro n'est jamais réécrit.
func (r *TicketRepo) Update(ctx context.Context, t *entity.Ticket) error {
	const query = `
		UPDATE tickets
		SET titre = $2, description = $3, client_id = $4, agent_id = $5, statut = $6, updated_at = $7, closed_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Titre, t.Description, t.ClientID, t.AgentID, t.Statut, t.UpdatedAt, t.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// Delete supprime définitivement un ticket.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}
