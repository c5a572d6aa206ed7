package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

// AgentUseCase gestion des comptes agents. Surface réservée aux agents (le
// routeur refuse les demandeurs). Suppression définitive, jamais de soft-delete.
type AgentUseCase struct {
	agentRepo     repository.AgentRepository
	demandeurRepo repository.DemandeurRepository
}

// NewAgentUseCase construit le cas d'usage.
func NewAgentUseCase(agentRepo repository.AgentRepository, demandeurRepo repository.DemandeurRepository) *AgentUseCase {
	return &AgentUseCase{agentRepo: agentRepo, demandeurRepo: demandeurRepo}
}

// Create crée un agent après contrôle d'unicité d'email sur les deux tables.
func (uc *AgentUseCase) Create(ctx context.Context, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if in.Email == "" || in.Password == "" || in.Nom == "" {
		return nil, domain.ErrValidation
	}
	if err := uc.verifierEmailLibre(ctx, in.Email, ""); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	agent := &entity.Agent{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nom:          in.Nom,
		Prenom:       in.Prenom,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// GetByID retourne un agent.
func (uc *AgentUseCase) GetByID(ctx context.Context, id string) (*dto.AgentResponse, error) {
	agent, err := uc.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	return toAgentResponse(agent), nil
}

// List retourne les agents, paginés.
func (uc *AgentUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.AgentResponse], error) {
	page.Defaults()
	agents, total, err := uc.agentRepo.List(ctx, repository.ListParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
		Search: page.Search,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		items = append(items, *toAgentResponse(a))
	}
	return &dto.ListResponse[dto.AgentResponse]{
		Data:       items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update modifie un agent; email revérifié sur les deux tables hors soi-même.
func (uc *AgentUseCase) Update(ctx context.Context, id string, in dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	agent, err := uc.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != agent.Email {
		if err := uc.verifierEmailLibre(ctx, *in.Email, agent.ID); err != nil {
			return nil, err
		}
		agent.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		agent.PasswordHash = string(hash)
	}
	if in.Nom != nil {
		agent.Nom = *in.Nom
	}
	if in.Prenom != nil {
		agent.Prenom = *in.Prenom
	}
	agent.UpdatedAt = time.Now()
	if err := uc.agentRepo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return toAgentResponse(agent), nil
}

// Delete supprime définitivement un agent.
func (uc *AgentUseCase) Delete(ctx context.Context, id string) error {
	agent, err := uc.agentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if agent == nil {
		return domain.ErrNotFound
	}
	return uc.agentRepo.Delete(ctx, id)
}

func (uc *AgentUseCase) verifierEmailLibre(ctx context.Context, email, exceptID string) error {
	agent, err := uc.agentRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if agent != nil && agent.ID != exceptID {
		return domain.ErrEmailExists
	}
	d, err := uc.demandeurRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if d != nil {
		return domain.ErrEmailExists
	}
	return nil
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	if a == nil {
		return nil
	}
	return &dto.AgentResponse{
		ID:        a.ID,
		Email:     a.Email,
		Nom:       a.Nom,
		Prenom:    a.Prenom,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
