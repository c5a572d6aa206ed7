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

// ClientUseCase règles métier des clients. Les clients n'appartiennent à
// aucun demandeur: ils sont visibles et modifiables par tout rôle authentifié,
// sans filtre de tenant.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create crée un client.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.NomSociete == "" {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	client := &entity.Client{
		ID:         uuid.New().String(),
		NomSociete: in.NomSociete,
		NomContact: in.NomContact,
		Email:      in.Email,
		Telephone:  in.Telephone,
		Adresse:    in.Adresse,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID retourne un client.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List retourne les clients, paginés et filtrables.
func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListResponse[dto.ClientResponse], error) {
	page.Defaults()
	clients, total, err := uc.clientRepo.List(ctx, repository.ListParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
		Search: page.Search,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ListResponse[dto.ClientResponse]{
		Data:       items,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	}, nil
}

// Update modifie un client.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.NomSociete != nil {
		client.NomSociete = *in.NomSociete
	}
	if in.NomContact != nil {
		client.NomContact = *in.NomContact
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Telephone != nil {
		client.Telephone = *in.Telephone
	}
	if in.Adresse != nil {
		client.Adresse = *in.Adresse
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete supprime un client.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:         c.ID,
		NomSociete: c.NomSociete,
		NomContact: c.NomContact,
		Email:      c.Email,
		Telephone:  c.Telephone,
		Adresse:    c.Adresse,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
