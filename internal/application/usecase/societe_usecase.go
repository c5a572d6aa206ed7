package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

// SocieteUseCase gestion des sociétés (tenants). Réservé aux agents: la
// restriction de rôle est appliquée par le routeur; ici vivent les invariants:
// unicité SIRET/domaine (à la création et à la mise à jour hors soi-même),
// format du domaine, et refus de suppression tant qu'un demandeur est rattaché.
type SocieteUseCase struct {
	societeRepo   repository.SocieteRepository
	demandeurRepo repository.DemandeurRepository
}

// NewSocieteUseCase construit le cas d'usage.
func NewSocieteUseCase(societeRepo repository.SocieteRepository, demandeurRepo repository.DemandeurRepository) *SocieteUseCase {
	return &SocieteUseCase{societeRepo: societeRepo, demandeurRepo: demandeurRepo}
}

// Create crée une société après contrôle du domaine et des unicités.
func (uc *SocieteUseCase) Create(ctx context.Context, in dto.CreateSocieteRequest) (*dto.SocieteResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrValidation
	}
	if err := domain.ValiderDomaine(in.Domaine); err != nil {
		return nil, err
	}
	if err := uc.verifierUnicite(ctx, in.Siret, in.Domaine, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	societe := &entity.Societe{
		ID:        uuid.New().String(),
		Nom:       in.Nom,
		Siret:     in.Siret,
		Adresse:   in.Adresse,
		Domaine:   in.Domaine,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.societeRepo.Create(ctx, societe); err != nil {
		return nil, err
	}
	return toSocieteResponse(societe), nil
}

// GetByID retourne une société.
func (uc *SocieteUseCase) GetByID(ctx context.Context, id string) (*dto.SocieteResponse, error) {
	societe, err := uc.societeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if societe == nil {
		return nil, domain.ErrNotFound
	}
	return toSocieteResponse(societe), nil
}

// List retourne les sociétés, paginées et recherchables.
func (uc *SocieteUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.SocieteResponse], error) {
	page.Defaults()
	societes, total, err := uc.societeRepo.List(ctx, repository.ListParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
		Search: page.Search,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SocieteResponse, 0, len(societes))
	for _, s := range societes {
		items = append(items, *toSocieteResponse(s))
	}
	return &dto.ListResponse[dto.SocieteResponse]{
		Data:       items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update modifie une société; les unicités sont revérifiées en excluant la
// société elle-même.
func (uc *SocieteUseCase) Update(ctx context.Context, id string, in dto.UpdateSocieteRequest) (*dto.SocieteResponse, error) {
	societe, err := uc.societeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if societe == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nom != nil {
		societe.Nom = *in.Nom
	}
	if in.Siret != nil {
		societe.Siret = *in.Siret
	}
	if in.Adresse != nil {
		societe.Adresse = *in.Adresse
	}
	if in.Domaine != nil {
		if err := domain.ValiderDomaine(*in.Domaine); err != nil {
			return nil, err
		}
		societe.Domaine = *in.Domaine
	}
	if err := uc.verifierUnicite(ctx, societe.Siret, societe.Domaine, societe.ID); err != nil {
		return nil, err
	}
	societe.UpdatedAt = time.Now()
	if err := uc.societeRepo.Update(ctx, societe); err != nil {
		return nil, err
	}
	return toSocieteResponse(societe), nil
}

// Delete supprime une société. Refusé tant qu'au moins un demandeur lui est
// rattaché: la société et ses demandeurs restent inchangés.
func (uc *SocieteUseCase) Delete(ctx context.Context, id string) error {
	societe, err := uc.societeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if societe == nil {
		return domain.ErrNotFound
	}
	n, err := uc.demandeurRepo.CountBySociete(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrSocieteHasMembers
	}
	return uc.societeRepo.Delete(ctx, id)
}

// verifierUnicite contrôle SIRET et domaine; exceptID exclut la société en
// cours de mise à jour.
func (uc *SocieteUseCase) verifierUnicite(ctx context.Context, siret, domaine, exceptID string) error {
	if siret != "" {
		existing, err := uc.societeRepo.GetBySiret(ctx, siret)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != exceptID {
			return domain.ErrSiretExists
		}
	}
	if domaine != "" {
		existing, err := uc.societeRepo.GetByDomaine(ctx, domaine)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != exceptID {
			return domain.ErrDomaineExists
		}
	}
	return nil
}

func toSocieteResponse(s *entity.Societe) *dto.SocieteResponse {
	if s == nil {
		return nil
	}
	return &dto.SocieteResponse{
		ID:        s.ID,
		Nom:       s.Nom,
		Siret:     s.Siret,
		Adresse:   s.Adresse,
		Domaine:   s.Domaine,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
