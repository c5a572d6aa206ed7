package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.EchangeRepository = (*EchangeRepo)(nil)

// EchangeRepo implémentation PostgreSQL du port EchangeRepository.
type EchangeRepo struct {
	pool *pgxpool.Pool
}

// NewEchangeRepository construit l'adaptateur de persistance des échanges.
func NewEchangeRepository(pool *pgxpool.Pool) *EchangeRepo {
	return &EchangeRepo{pool: pool}
}

// Create persiste un échange.
func (r *EchangeRepo) Create(ctx context.Context, e *entity.Echange) error {
	const query = `
		INSERT INTO echanges (id, parent_type, parent_id, auteur_id, auteur_type, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.ParentType, e.ParentID, e.AuteurID, e.AuteurType, e.Message, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert échange: %w", err)
	}
	return nil
}

// ListByParent retourne le fil d'un parent, du plus ancien au plus récent.
func (r *EchangeRepo) ListByParent(ctx context.Context, parentType, parentID string) ([]*entity.Echange, error) {
	const query = `
		SELECT id, parent_type, parent_id, auteur_id, auteur_type, message, created_at
		FROM echanges WHERE parent_type = $1 AND parent_id = $2
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, parentType, parentID)
	if err != nil {
		return nil, fmt.Errorf("list échanges: %w", err)
	}
	defer rows.Close()

	var list []*entity.Echange
	for rows.Next() {
		var e entity.Echange
		if err := rows.Scan(&e.ID, &e.ParentType, &e.ParentID, &e.AuteurID, &e.AuteurType, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan échange: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
