package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation PostgreSQL du port ClientRepository.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository construit l'adaptateur de persistance des clients.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

const clientColonnes = `id, nom_societe, nom_contact, email, telephone, adresse, created_at, updated_at`

// Create persiste un nouveau client.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	const query = `
		INSERT INTO clients (id, nom_societe, nom_contact, email, telephone, adresse, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.NomSociete, c.NomContact, c.Email, c.Telephone, c.Adresse, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID retourne un client par id, nil si absent.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	var c entity.Client
	err := r.pool.QueryRow(ctx, `SELECT `+clientColonnes+` FROM clients WHERE id = $1`, id).Scan(
		&c.ID, &c.NomSociete, &c.NomContact, &c.Email, &c.Telephone, &c.Adresse, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List retourne les clients paginés avec le total.
func (r *ClientRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Client, int, error) {
	motif := motifRecherche(p.Search)
	var total int
	filtre := `WHERE $1 = '%%' OR ` + replier("nom_societe") + ` LIKE $1 OR ` + replier("nom_contact") + ` LIKE $1 OR ` + replier("email") + ` LIKE $1`
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM clients `+filtre, motif).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := `
		SELECT ` + clientColonnes + `
		FROM clients ` + filtre + `
		ORDER BY nom_societe ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, motif, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.NomSociete, &c.NomContact, &c.Email, &c.Telephone, &c.Adresse, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Update met à jour un client existant.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	const query = `
		UPDATE clients
		SET nom_societe = $2, nom_contact = $3, email = $4, telephone = $5, adresse = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.NomSociete, c.NomContact, c.Email, c.Telephone, c.Adresse, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete supprime un client.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
