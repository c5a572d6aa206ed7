package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

// DemandeurUseCase gestion des comptes demandeurs. Un agent gère tout; un
// demandeur ne gère que les comptes de sa société (créés dans sa société,
// jamais ailleurs) et ne peut pas se supprimer lui-même. L'unicité d'email
// est contrôlée sur les DEUX tables (agents et demandeurs).
type DemandeurUseCase struct {
	demandeurRepo repository.DemandeurRepository
	agentRepo     repository.AgentRepository
	societeRepo   repository.SocieteRepository
	resolver      *access.Resolver
}

// NewDemandeurUseCase construit le cas d'usage.
func NewDemandeurUseCase(
	demandeurRepo repository.DemandeurRepository,
	agentRepo repository.AgentRepository,
	societeRepo repository.SocieteRepository,
	resolver *access.Resolver,
) *DemandeurUseCase {
	return &DemandeurUseCase{
		demandeurRepo: demandeurRepo,
		agentRepo:     agentRepo,
		societeRepo:   societeRepo,
		resolver:      resolver,
	}
}

// Create crée un demandeur. Un appelant demandeur est cantonné à sa propre
// société: le societe_id du corps est remplacé par le sien.
func (uc *DemandeurUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateDemandeurRequest) (*dto.DemandeurResponse, error) {
	if in.Email == "" || in.Password == "" || in.Nom == "" {
		return nil, domain.ErrValidation
	}
	societeID := in.SocieteID
	if !caller.EstAgent() {
		societeID = caller.SocieteID
	}
	if societeID != nil {
		societe, err := uc.societeRepo.GetByID(ctx, *societeID)
		if err != nil {
			return nil, err
		}
		if societe == nil {
			return nil, domain.ErrValidation
		}
	}
	if err := uc.verifierEmailLibre(ctx, in.Email, ""); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	d := &entity.Demandeur{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nom:          in.Nom,
		Prenom:       in.Prenom,
		Telephone:    in.Telephone,
		SocieteID:    societeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.demandeurRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDemandeurResponse(d), nil
}

// GetByID retourne un demandeur visible de l'appelant.
func (uc *DemandeurUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.DemandeurResponse, error) {
	d, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return toDemandeurResponse(d), nil
}

// List retourne les demandeurs visibles: tous pour un agent, les membres de
// sa société (ou lui seul) pour un demandeur. Le périmètre est appliqué dans
// la requête: la pagination et le total portent sur les seules fiches
// visibles, jamais sur la table entière.
func (uc *DemandeurUseCase) List(ctx context.Context, caller access.Caller, page dto.PageRequest) (*dto.ListResponse[dto.DemandeurResponse], error) {
	page.Defaults()
	scope, err := uc.resolver.ScopeFor(ctx, caller)
	if err != nil {
		return nil, err
	}
	demandeurs, total, err := uc.demandeurRepo.List(ctx, repository.ListParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
		Search: page.Search,
	}, scope)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DemandeurResponse, 0, len(demandeurs))
	for _, d := range demandeurs {
		items = append(items, *toDemandeurResponse(d))
	}
	return &dto.ListResponse[dto.DemandeurResponse]{
		Data:       items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update modifie un demandeur visible de l'appelant. Le mot de passe fourni
// est re-hashé; l'email est revérifié sur les deux tables hors soi-même.
func (uc *DemandeurUseCase) Update(ctx context.Context, caller access.Caller, id string, in dto.UpdateDemandeurRequest) (*dto.DemandeurResponse, error) {
	d, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != d.Email {
		if err := uc.verifierEmailLibre(ctx, *in.Email, d.ID); err != nil {
			return nil, err
		}
		d.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		d.PasswordHash = string(hash)
	}
	if in.Nom != nil {
		d.Nom = *in.Nom
	}
	if in.Prenom != nil {
		d.Prenom = *in.Prenom
	}
	if in.Telephone != nil {
		d.Telephone = *in.Telephone
	}
	// Le rattachement de société ne bouge que par un agent.
	if in.SocieteID != nil && caller.EstAgent() {
		d.SocieteID = in.SocieteID
	}
	d.UpdatedAt = time.Now()
	if err := uc.demandeurRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDemandeurResponse(d), nil
}

// Delete supprime un demandeur visible de l'appelant. L'auto-suppression par
// un demandeur est interdite.
func (uc *DemandeurUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	d, err := uc.loadAutorise(ctx, caller, id)
	if err != nil {
		return err
	}
	if !caller.EstAgent() && d.ID == caller.ID {
		return domain.ErrSelfDeletion
	}
	return uc.demandeurRepo.Delete(ctx, id)
}

func (uc *DemandeurUseCase) loadAutorise(ctx context.Context, caller access.Caller, id string) (*entity.Demandeur, error) {
	d, err := uc.demandeurRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanAccess(caller, access.Ownership{DemandeurID: d.ID, SocieteID: d.SocieteID}) {
		return nil, domain.ErrForbidden
	}
	return d, nil
}

// verifierEmailLibre contrôle l'unicité d'email sur agents ET demandeurs;
// exceptID exclut le demandeur en cours de mise à jour.
func (uc *DemandeurUseCase) verifierEmailLibre(ctx context.Context, email, exceptID string) error {
	agent, err := uc.agentRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if agent != nil {
		return domain.ErrEmailExists
	}
	d, err := uc.demandeurRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if d != nil && d.ID != exceptID {
		return domain.ErrEmailExists
	}
	return nil
}

func toDemandeurResponse(d *entity.Demandeur) *dto.DemandeurResponse {
	if d == nil {
		return nil
	}
	return &dto.DemandeurResponse{
		ID:        d.ID,
		Email:     d.Email,
		Nom:       d.Nom,
		Prenom:    d.Prenom,
		Telephone: d.Telephone,
		SocieteID: d.SocieteID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
