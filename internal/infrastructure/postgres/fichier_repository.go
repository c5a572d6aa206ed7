package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

var _ repository.FichierRepository = (*FichierRepo)(nil)

// FichierRepo implémentation PostgreSQL du port FichierRepository. Le contenu
// base64 vit dans la même table; les listes l'excluent pour rester légères.
type FichierRepo struct {
	pool *pgxpool.Pool
}

// NewFichierRepository construit l'adaptateur de persistance des pièces jointes.
func NewFichierRepository(pool *pgxpool.Pool) *FichierRepo {
	return &FichierRepo{pool: pool}
}

// Create persiste une pièce jointe, contenu compris.
func (r *FichierRepo) Create(ctx context.Context, f *entity.Fichier) error {
	const query = `
		INSERT INTO fichiers (id, parent_type, parent_id, nom_fichier, type_mime, taille, contenu_base64, uploade_par, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		f.ID, f.ParentType, f.ParentID, f.NomFichier, f.TypeMime, f.Taille, f.ContenuBase64, f.UploadePar, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fichier: %w", err)
	}
	return nil
}

// GetByID retourne une pièce jointe complète, contenu inclus, nil si absente.
func (r *FichierRepo) GetByID(ctx context.Context, id string) (*entity.Fichier, error) {
	var f entity.Fichier
	const query = `
		SELECT id, parent_type, parent_id, nom_fichier, type_mime, taille, contenu_base64, uploade_par, created_at
		FROM fichiers WHERE id = $1`
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.ParentType, &f.ParentID, &f.NomFichier, &f.TypeMime, &f.Taille, &f.ContenuBase64, &f.UploadePar, &f.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fichier: %w", err)
	}
	return &f, nil
}

// ListByParent retourne les métadonnées des pièces jointes d'un parent,
// sans le contenu base64.
func (r *FichierRepo) ListByParent(ctx context.Context, parentType, parentID string) ([]*entity.Fichier, error) {
	const query = `
		SELECT id, parent_type, parent_id, nom_fichier, type_mime, taille, uploade_par, created_at
		FROM fichiers WHERE parent_type = $1 AND parent_id = $2
		ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, parentType, parentID)
	if err != nil {
		return nil, fmt.Errorf("list fichiers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Fichier
	for rows.Next() {
		var f entity.Fichier
		if err := rows.Scan(&f.ID, &f.ParentType, &f.ParentID, &f.NomFichier, &f.TypeMime, &f.Taille, &f.UploadePar, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fichier: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete supprime une pièce jointe.
func (r *FichierRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM fichiers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete fichier: %w", err)
	}
	return nil
}
