package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

// Vérifie que AgentRepo implémente le port.
var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo implémentation PostgreSQL du port AgentRepository.
type AgentRepo struct {
	pool *pgxpool.Pool
}

// NewAgentRepository construit l'adaptateur de persistance des agents.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepo {
	return &AgentRepo{pool: pool}
}

// Create persiste un nouvel agent.
func (r *AgentRepo) Create(ctx context.Context, a *entity.Agent) error {
	const query = `
		INSERT INTO agents (id, email, password_hash, nom, prenom, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.Nom, a.Prenom, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

// GetByID retourne un agent par id, nil si absent.
func (r *AgentRepo) GetByID(ctx context.Context, id string) (*entity.Agent, error) {
	const query = `
		SELECT id, email, password_hash, nom, prenom, created_at, updated_at
		FROM agents WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail retourne un agent par email, nil si absent.
func (r *AgentRepo) GetByEmail(ctx context.Context, email string) (*entity.Agent, error) {
	const query = `
		SELECT id, email, password_hash, nom, prenom, created_at, updated_at
		FROM agents WHERE lower(email) = lower($1)`
	return r.scanOne(ctx, query, email)
}

// List retourne les agents paginés avec le total.
func (r *AgentRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Agent, int, error) {
	motif := motifRecherche(p.Search)
	var total int
	filtre := `WHERE $1 = '%%' OR ` + replier("nom") + ` LIKE $1 OR ` + replier("prenom") + ` LIKE $1 OR ` + replier("email") + ` LIKE $1`
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM agents `+filtre, motif).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count agents: %w", err)
	}

	query := `
		SELECT id, email, password_hash, nom, prenom, created_at, updated_at
		FROM agents ` + filtre + `
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, motif, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Agent
	for rows.Next() {
		var a entity.Agent
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Nom, &a.Prenom, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}

// Update met à jour un agent existant.
func (r *AgentRepo) Update(ctx context.Context, a *entity.Agent) error {
	const query = `
		UPDATE agents SET email = $2, password_hash = $3, nom = $4, prenom = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, a.ID, a.Email, a.PasswordHash, a.Nom, a.Prenom, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update agent: %w", err)
	}
	return nil
}

// Delete supprime définitivement un agent.
func (r *AgentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	return nil
}

func (r *AgentRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Agent, error) {
	var a entity.Agent
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Nom, &a.Prenom, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return &a, nil
}
