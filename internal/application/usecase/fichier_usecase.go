package usecase

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/notify"
	"github.com/jrossignol/voip-backoffice/internal/domain"
	"github.com/jrossignol/voip-backoffice/internal/domain/entity"
	"github.com/jrossignol/voip-backoffice/internal/domain/repository"
)

// FichierUseCase pièces jointes des tickets, portabilités et tâches.
// Append-only hors suppression; le contenu base64 est validé à l'entrée.
type FichierUseCase struct {
	parentResolver
	fichierRepo repository.FichierRepository
	dispatcher  *notify.Dispatcher
}

// NewFichierUseCase construit le cas d'usage.
func NewFichierUseCase(
	fichierRepo repository.FichierRepository,
	ticketRepo repository.TicketRepository,
	portaRepo repository.PortabiliteRepository,
	prodRepo repository.ProductionRepository,
	resolver *access.Resolver,
	dispatcher *notify.Dispatcher,
) *FichierUseCase {
	return &FichierUseCase{
		parentResolver: parentResolver{
			ticketRepo: ticketRepo,
			portaRepo:  portaRepo,
			prodRepo:   prodRepo,
			resolver:   resolver,
		},
		fichierRepo: fichierRepo,
		dispatcher:  dispatcher,
	}
}

// Create attache un fichier au parent. La taille est celle du contenu décodé.
func (uc *FichierUseCase) Create(ctx context.Context, caller access.Caller, parentType, parentID string, in dto.CreateFichierRequest) (*dto.FichierResponse, error) {
	if in.NomFichier == "" || in.ContenuBase64 == "" {
		return nil, domain.ErrValidation
	}
	raw, err := base64.StdEncoding.DecodeString(in.ContenuBase64)
	if err != nil {
		return nil, domain.ErrValidation
	}
	parent, err := uc.loadParent(ctx, caller, parentType, parentID)
	if err != nil {
		return nil, err
	}

	fichier := &entity.Fichier{
		ID:            uuid.New().String(),
		ParentType:    parentType,
		ParentID:      parentID,
		NomFichier:    in.NomFichier,
		TypeMime:      in.TypeMime,
		Taille:        int64(len(raw)),
		ContenuBase64: in.ContenuBase64,
		UploadePar:    caller.ID,
		CreatedAt:     time.Now(),
	}
	if err := uc.fichierRepo.Create(ctx, fichier); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(notify.Event{
		Kind:       notify.KindFileAdded,
		EntityType: parent.EntityType,
		Numero:     parent.Numero,
		Titre:      parent.Titre,
		ActorRole:  caller.Role,
		ActorName:  caller.Email,
	})

	return toFichierResponse(fichier, true), nil
}

// GetByID retourne une pièce jointe complète (contenu inclus).
func (uc *FichierUseCase) GetByID(ctx context.Context, caller access.Caller, id string) (*dto.FichierResponse, error) {
	fichier, err := uc.fichierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fichier == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.loadParent(ctx, caller, fichier.ParentType, fichier.ParentID); err != nil {
		return nil, err
	}
	return toFichierResponse(fichier, true), nil
}

// ListByParent retourne les métadonnées des pièces jointes du parent.
func (uc *FichierUseCase) ListByParent(ctx context.Context, caller access.Caller, parentType, parentID string) ([]dto.FichierResponse, error) {
	if _, err := uc.loadParent(ctx, caller, parentType, parentID); err != nil {
		return nil, err
	}
	fichiers, err := uc.fichierRepo.ListByParent(ctx, parentType, parentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FichierResponse, 0, len(fichiers))
	for _, f := range fichiers {
		items = append(items, *toFichierResponse(f, false))
	}
	return items, nil
}

// Delete supprime une pièce jointe du parent accessible à l'appelant.
func (uc *FichierUseCase) Delete(ctx context.Context, caller access.Caller, id string) error {
	fichier, err := uc.fichierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fichier == nil {
		return domain.ErrNotFound
	}
	parent, err := uc.loadParent(ctx, caller, fichier.ParentType, fichier.ParentID)
	if err != nil {
		return err
	}
	if err := uc.fichierRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.dispatcher.Dispatch(notify.Event{
		Kind:       notify.KindFileRemoved,
		EntityType: parent.EntityType,
		Numero:     parent.Numero,
		Titre:      parent.Titre,
		ActorRole:  caller.Role,
		ActorName:  caller.Email,
	})
	return nil
}

func toFichierResponse(f *entity.Fichier, avecContenu bool) *dto.FichierResponse {
	if f == nil {
		return nil
	}
	resp := &dto.FichierResponse{
		ID:         f.ID,
		ParentType: f.ParentType,
		ParentID:   f.ParentID,
		NomFichier: f.NomFichier,
		TypeMime:   f.TypeMime,
		Taille:     f.Taille,
		UploadePar: f.UploadePar,
		CreatedAt:  f.CreatedAt,
	}
	if avecContenu {
		resp.ContenuBase64 = f.ContenuBase64
	}
	return resp
}
