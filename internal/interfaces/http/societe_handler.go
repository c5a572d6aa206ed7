package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// SocieteHandler gère les requêtes HTTP des sociétés (réservé aux agents).
type SocieteHandler struct {
	uc *usecase.SocieteUseCase
}

// NewSocieteHandler construit le handler.
func NewSocieteHandler(uc *usecase.SocieteUseCase) *SocieteHandler {
	return &SocieteHandler{uc: uc}
}

// Create crée une société. SIRET et domaine sont optionnels mais uniques.
func (h *SocieteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSocieteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	if in.Nom == "" {
		return badRequest(c, "nom requis")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID retourne une société.
func (h *SocieteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// List retourne les sociétés, paginées.
func (h *SocieteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paramètres invalides")
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Update met à jour partiellement une société.
func (h *SocieteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSocieteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime une société vide de demandeurs.
func (h *SocieteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Société supprimée"})
}
