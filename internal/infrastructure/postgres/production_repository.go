package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implémentation PostgreSQL du port ProductionRepository.
// Production et tâches sont insérées par des statements séparés, sans
// transaction englobante (comportement historique documenté).
type ProductionRepo struct {
	pool *pgxpool.Pool
}

// NewProductionRepository construit l'adaptateur de persistance des productions.
func NewProductionRepository(pool *pgxpool.Pool) *ProductionRepo {
	return &ProductionRepo{pool: pool}
}

const productionColonnes = `id, numero, titre, client_id, demandeur_id, societe_id, agent_id, priorite, statut, created_at, updated_at`

// Create persiste une production (sans ses tâches).
func (r *ProductionRepo) Create(ctx context.Context, p *entity.Production) error {
	const query = `
		INSERT INTO productions (id, numero, titre, client_id, demandeur_id, societe_id, agent_id, priorite, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Numero, p.Titre, p.ClientID, p.DemandeurID, p.SocieteID, p.AgentID,
		p.Priorite, p.Statut, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByID retourne une production avec ses tâches ordonnées, nil si absente.
func (r *ProductionRepo) GetByID(ctx context.Context, id string) (*entity.Production, error) {
	var p entity.Production
	err := r.pool.QueryRow(ctx, `SELECT `+productionColonnes+` FROM productions WHERE id = $1`, id).Scan(
		&p.ID, &p.Numero, &p.Titre, &p.ClientID, &p.DemandeurID, &p.SocieteID, &p.AgentID,
		&p.Priorite, &p.Statut, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	taches, err := r.ListTaches(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for _, t := range taches {
		p.Taches = append(p.Taches, *t)
	}
	return &p, nil
}

// NumeroExiste indique si un numéro est déjà porté par une production.
func (r *ProductionRepo) NumeroExiste(ctx context.Context, numero string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM productions WHERE numero = $1)`, numero).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("numéro production existe: %w", err)
	}
	return exists, nil
}

// List retourne les productions du périmètre, paginées avec le total.
// Les tâches ne sont pas chargées dans les listes.
func (r *ProductionRepo) List(ctx context.Context, lp repository.ListParams, scope repository.Scope) ([]*entity.Production, int, error) {
	motif := motifRecherche(lp.Search)
	ids := scope.DemandeurIDs
	if ids == nil {
		ids = []string{}
	}

	filtre := `
		WHERE ($1 OR demandeur_id = ANY($2))
		  AND ($3 = '%%' OR ` + replier("titre") + ` LIKE $3 OR numero LIKE $3)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM productions`+filtre, scope.All, ids, motif).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productions: %w", err)
	}

	query := `SELECT ` + productionColonnes + ` FROM productions` + filtre + `
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, scope.All, ids, motif, lp.Limit, lp.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.Numero, &p.Titre, &p.ClientID, &p.DemandeurID, &p.SocieteID, &p.AgentID,
			&p.Priorite, &p.Statut, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Update met à jour une production existante.
func (r *ProductionRepo) Update(ctx context.Context, p *entity.Production) error {
	const query = `
		UPDATE productions
		SET titre = $2, client_id = $3, agent_id = $4, priorite = $5, statut = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Titre, p.ClientID, p.AgentID, p.Priorite, p.Statut, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// Delete supprime une production et ses tâches (cascade en base).
func (r *ProductionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM productions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}

// CreateTache persiste une tâche de production.
func (r *ProductionRepo) CreateTache(ctx context.Context, t *entity.ProductionTache) error {
	const query = `
		INSERT INTO production_taches (id, production_id, ordre, libelle, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.ProductionID, t.Ordre, t.Libelle, t.Statut, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tâche: %w", err)
	}
	return nil
}

// GetTacheByID retourne une tâche par id, nil si absente.
func (r *ProductionRepo) GetTacheByID(ctx context.Context, id string) (*entity.ProductionTache, error) {
	var t entity.ProductionTache
	const query = `
		SELECT id, production_id, ordre, libelle, statut, created_at, updated_at
		FROM production_taches WHERE id = $1`
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.ProductionID, &t.Ordre, &t.Libelle, &t.Statut, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tâche: %w", err)
	}
	return &t, nil
}

// ListTaches retourne les tâches d'une production, dans l'ordre.
func (r *ProductionRepo) ListTaches(ctx context.Context, productionID string) ([]*entity.ProductionTache, error) {
	const query = `
		SELECT id, production_id, ordre, libelle, statut, created_at, updated_at
		FROM production_taches WHERE production_id = $1 ORDER BY ordre ASC`
	rows, err := r.pool.Query(ctx, query, productionID)
	if err != nil {
		return nil, fmt.Errorf("list tâches: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductionTache
	for rows.Next() {
		var t entity.ProductionTache
		if err := rows.Scan(&t.ID, &t.ProductionID, &t.Ordre, &t.Libelle, &t.Statut, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tâche: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// UpdateTache met à jour une tâche existante.
func (r *ProductionRepo) UpdateTache(ctx context.Context, t *entity.ProductionTache) error {
	const query = `
		UPDATE production_taches SET ordre = $2, libelle = $3, statut = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, t.ID, t.Ordre, t.Libelle, t.Statut, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tâche: %w", err)
	}
	return nil
}

// DeleteTache supprime une tâche.
func (r *ProductionRepo) DeleteTache(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM production_taches WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tâche: %w", err)
	}
	return nil
}
