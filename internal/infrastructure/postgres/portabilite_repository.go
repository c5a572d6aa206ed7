package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.PortabiliteRepository = (*PortabiliteRepo)(nil)

// PortabiliteRepo implémentation PostgreSQL du port PortabiliteRepository.
type PortabiliteRepo struct {
	pool *pgxpool.Pool
}

// NewPortabiliteRepository construit l'adaptateur de persistance des portabilités.
func NewPortabiliteRepository(pool *pgxpool.Pool) *PortabiliteRepo {
	return &PortabiliteRepo{pool: pool}
}

const portabiliteColonnes = `id, numero, client_id, demandeur_id, agent_id, numeros_portes, statut, date_demandee, date_effective, created_at, updated_at`

// Create persiste une nouvelle portabilité.
func (r *PortabiliteRepo) Create(ctx context.Context, p *entity.Portabilite) error {
	const query = `
		INSERT INTO portabilites (id, numero, client_id, demandeur_id, agent_id, numeros_portes, statut, date_demandee, date_effective, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Numero, p.ClientID, p.DemandeurID, p.AgentID, p.NumerosPortes,
		p.Statut, p.DateDemandee, p.DateEffective, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert portabilité: %w", err)
	}
	return nil
}

// GetByID retourne une portabilité par id, nil si absente.
func (r *PortabiliteRepo) GetByID(ctx context.Context, id string) (*entity.Portabilite, error) {
	var p entity.Portabilite
	err := r.pool.QueryRow(ctx, `SELECT `+portabiliteColonnes+` FROM portabilites WHERE id = $1`, id).Scan(
		&p.ID, &p.Numero, &p.ClientID, &p.DemandeurID, &p.AgentID, &p.NumerosPortes,
		&p.Statut, &p.DateDemandee, &p.DateEffective, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get portabilité: %w", err)
	}
	return &p, nil
}

// NumeroExiste indique si un numéro est déjà porté par une portabilité.
func (r *PortabiliteRepo) NumeroExiste(ctx context.Context, numero string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM portabilites WHERE numero = $1)`, numero).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("numéro portabilité existe: %w", err)
	}
	return exists, nil
}

// List retourne les portabilités du périmètre, paginées avec le total.
func (r *PortabiliteRepo) List(ctx context.Context, lp repository.ListParams, scope repository.Scope) ([]*entity.Portabilite, int, error) {
	motif := motifRecherche(lp.Search)
	ids := scope.DemandeurIDs
	if ids == nil {
		ids = []string{}
	}

	filtre := `
		WHERE ($1 OR demandeur_id = ANY($2))
		  AND ($3 = '%%' OR numeros_portes LIKE $3 OR numero LIKE $3)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM portabilites`+filtre, scope.All, ids, motif).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count portabilités: %w", err)
	}

	query := `SELECT ` + portabiliteColonnes + ` FROM portabilites` + filtre + `
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, scope.All, ids, motif, lp.Limit, lp.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list portabilités: %w", err)
	}
	defer rows.Close()

	var list []*entity.Portabilite
	for rows.Next() {
		var p entity.Portabilite
		if err := rows.Scan(&p.ID, &p.Numero, &p.ClientID, &p.DemandeurID, &p.AgentID, &p.NumerosPortes,
			&p.Statut, &p.DateDemandee, &p.DateEffective, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan portabilité: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Update met à jour une portabilité existante. Le numéro n'est jamais réécrit.
func (r *PortabiliteRepo) Update(ctx context.Context, p *entity.Portabilite) error {
	const query = `
		UPDATE portabilites
		SET client_id = $2, agent_id = $3, numeros_portes = $4, statut = $5, date_demandee = $6, date_effective = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.ClientID, p.AgentID, p.NumerosPortes, p.Statut, p.DateDemandee, p.DateEffective, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update portabilité: %w", err)
	}
	return nil
}

// Delete supprime définitivement une portabilité.
func (r *PortabiliteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM portabilites WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete portabilité: %w", err)
	}
	return nil
}
