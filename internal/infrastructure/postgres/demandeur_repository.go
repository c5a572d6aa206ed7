package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.DemandeurRepository = (*DemandeurRepo)(nil)

// DemandeurRepo implémentation PostgreSQL du port DemandeurRepository.
type DemandeurRepo struct {
	pool *pgxpool.Pool
}

// NewDemandeurRepository construit l'adaptateur de persistance des demandeurs.
func NewDemandeurRepository(pool *pgxpool.Pool) *DemandeurRepo {
	return &DemandeurRepo{pool: pool}
}

const demandeurColonnes = `id, email, password_hash, nom, prenom, telephone, societe_id, created_at, updated_at`

// Create persiste un nouveau demandeur.
func (r *DemandeurRepo) Create(ctx context.Context, d *entity.Demandeur) error {
	const query = `
		INSERT INTO demandeurs (id, email, password_hash, nom, prenom, telephone, societe_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.Email, d.PasswordHash, d.Nom, d.Prenom, d.Telephone, d.SocieteID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert demandeur: %w", err)
	}
	return nil
}

// GetByID retourne un demandeur par id, nil si absent.
func (r *DemandeurRepo) GetByID(ctx context.Context, id string) (*entity.Demandeur, error) {
	return r.scanOne(ctx, `SELECT `+demandeurColonnes+` FROM demandeurs WHERE id = $1`, id)
}

// GetByEmail retourne un demandeur par email, nil si absent.
func (r *DemandeurRepo) GetByEmail(ctx context.Context, email string) (*entity.Demandeur, error) {
	return r.scanOne(ctx, `SELECT `+demandeurColonnes+` FROM demandeurs WHERE lower(email) = lower($1)`, email)
}

// List retourne les demandeurs du périmètre, paginés avec le total. Le scope
// est appliqué en SQL sur l'id de la fiche: la page et le total ne portent que
// sur ce que l'appelant a le droit de voir.
func (r *DemandeurRepo) List(ctx context.Context, p repository.ListParams, scope repository.Scope) ([]*entity.Demandeur, int, error) {
	motif := motifRecherche(p.Search)
	ids := scope.DemandeurIDs
	if ids == nil {
		ids = []string{}
	}

	filtre := `
		WHERE ($1 OR id = ANY($2))
		  AND ($3 = '%%' OR ` + replier("nom") + ` LIKE $3 OR ` + replier("prenom") + ` LIKE $3 OR ` + replier("email") + ` LIKE $3)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM demandeurs`+filtre, scope.All, ids, motif).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count demandeurs: %w", err)
	}

	query := `
		SELECT ` + demandeurColonnes + `
		FROM demandeurs` + filtre + `
		ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, scope.All, ids, motif, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list demandeurs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Demandeur
	for rows.Next() {
		var d entity.Demandeur
		if err := rows.Scan(&d.ID, &d.Email, &d.PasswordHash, &d.Nom, &d.Prenom, &d.Telephone, &d.SocieteID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan demandeur: %w", err)
		}
		list = append(list, &d)
	}
	return list, total, rows.Err()
}

// ListIDsBySociete retourne les ids des demandeurs de la société.
func (r *DemandeurRepo) ListIDsBySociete(ctx context.Context, societeID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM demandeurs WHERE societe_id = $1`, societeID)
	if err != nil {
		return nil, fmt.Errorf("ids demandeurs par société: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id demandeur: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountBySociete compte les demandeurs rattachés à la société.
func (r *DemandeurRepo) CountBySociete(ctx context.Context, societeID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM demandeurs WHERE societe_id = $1`, societeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count demandeurs par société: %w", err)
	}
	return n, nil
}

// Update met à jour un demandeur existant.
func (r *DemandeurRepo) Update(ctx context.Context, d *entity.Demandeur) error {
	const query = `
		UPDATE demandeurs
		SET email = $2, password_hash = $3, nom = $4, prenom = $5, telephone = $6, societe_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.Email, d.PasswordHash, d.Nom, d.Prenom, d.Telephone, d.SocieteID, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update demandeur: %w", err)
	}
	return nil
}

// Delete supprime définitivement un demandeur.
func (r *DemandeurRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM demandeurs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete demandeur: %w", err)
	}
	return nil
}

func (r *DemandeurRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Demandeur, error) {
	var d entity.Demandeur
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&d.ID, &d.Email, &d.PasswordHash, &d.Nom, &d.Prenom, &d.Telephone, &d.SocieteID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get demandeur: %w", err)
	}
	return &d, nil
}
