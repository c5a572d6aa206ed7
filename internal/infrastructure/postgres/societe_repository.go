package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.SocieteRepository = (*SocieteRepo)(nil)

// SocieteRepo implémentation PostgreSQL du port SocieteRepository.
type SocieteRepo struct {
	pool *pgxpool.Pool
}

// NewSocieteRepository construit l'adaptateur de persistance des sociétés.
func NewSocieteRepository(pool *pgxpool.Pool) *SocieteRepo {
	return &SocieteRepo{pool: pool}
}

const societeColonnes = `id, nom, siret, adresse, domaine, created_at, updated_at`

// Create persiste une nouvelle société.
func (r *SocieteRepo) Create(ctx context.Context, s *entity.Societe) error {
	const query = `
		INSERT INTO societes (id, nom, siret, adresse, domaine, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7)`
	_, err := r.pool.Exec(ctx, query, s.ID, s.Nom, s.Siret, s.Adresse, s.Domaine, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert société: %w", err)
	}
	return nil
}

// GetByID retourne une société par id, nil si absente.
func (r *SocieteRepo) GetByID(ctx context.Context, id string) (*entity.Societe, error) {
	return r.scanOne(ctx, `SELECT `+societeColonnes+` FROM societes WHERE id = $1`, id)
}

// GetBySiret retourne une société par SIRET, nil si absente.
func (r *SocieteRepo) GetBySiret(ctx context.Context, siret string) (*entity.Societe, error) {
	return r.scanOne(ctx, `SELECT `+societeColonnes+` FROM societes WHERE siret = $1`, siret)
}

// GetByDomaine retourne une société par domaine, nil si absente.
func (r *SocieteRepo) GetByDomaine(ctx context.Context, domaine string) (*entity.Societe, error) {
	return r.scanOne(ctx, `SELECT `+societeColonnes+` FROM societes WHERE lower(domaine) = lower($1)`, domaine)
}

// List retourne les sociétés paginées avec le total, recherchables sur nom,
// SIRET et domaine.
func (r *SocieteRepo) List(ctx context.Context, p repository.ListParams) ([]*entity.Societe, int, error) {
	motif := motifRecherche(p.Search)
	var total int
	filtre := `WHERE $1 = '%%' OR ` + replier("nom") + ` LIKE $1 OR siret LIKE $1 OR ` + replier("domaine") + ` LIKE $1`
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM societes `+filtre, motif).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sociétés: %w", err)
	}

	query := `
		SELECT ` + societeColonnes + `
		FROM societes ` + filtre + `
		ORDER BY nom ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, motif, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sociétés: %w", err)
	}
	defer rows.Close()

	var list []*entity.Societe
	for rows.Next() {
		s, err := scanSociete(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// Update met à jour une société existante.
func (r *SocieteRepo) Update(ctx context.Context, s *entity.Societe) error {
	const query = `
		UPDATE societes
		SET nom = $2, siret = NULLIF($3, ''), adresse = $4, domaine = NULLIF($5, ''), updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, s.ID, s.Nom, s.Siret, s.Adresse, s.Domaine, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update société: %w", err)
	}
	return nil
}

// Delete supprime une société. L'invariant «aucun demandeur rattaché» est
// contrôlé par le cas d'usage avant l'appel.
func (r *SocieteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM societes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete société: %w", err)
	}
	return nil
}

func (r *SocieteRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Societe, error) {
	s, err := scanSociete(r.pool.QueryRow(ctx, query, arg).Scan)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get société: %w", err)
	}
	return s, nil
}

// scanSociete lit une ligne société; siret et domaine sont NULL en base quand vides.
func scanSociete(scan func(dest ...any) error) (*entity.Societe, error) {
	var s entity.Societe
	var siret, domaine *string
	if err := scan(&s.ID, &s.Nom, &siret, &s.Adresse, &domaine, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if siret != nil {
		s.Siret = *siret
	}
	if domaine != nil {
		s.Domaine = *domaine
	}
	return &s, nil
}
