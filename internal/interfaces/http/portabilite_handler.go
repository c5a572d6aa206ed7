package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// PortabiliteHandler gère les requêtes HTTP des portabilités (protégé).
type PortabiliteHandler struct {
	uc *usecase.PortabiliteUseCase
}

// NewPortabiliteHandler construit le handler.
func NewPortabiliteHandler(uc *usecase.PortabiliteUseCase) *PortabiliteHandler {
	return &PortabiliteHandler{uc: uc}
}

// Create crée une demande de portabilité.
func (h *PortabiliteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePortabiliteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	if in.ClientID == "" || in.NumerosPortes == "" {
		return badRequest(c, "client_id et numeros_portes requis")
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID retourne une portabilité visible de l'appelant.
func (h *PortabiliteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// List retourne les portabilités du périmètre de l'appelant, paginées.
func (h *PortabiliteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paramètres invalides")
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), page)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Update met à jour partiellement une portabilité.
func (h *PortabiliteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePortabiliteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), c.Params("id"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime une portabilité.
func (h *PortabiliteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Portabilité supprimée"})
}
