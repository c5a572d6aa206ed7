package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// ClientHandler gère les requêtes HTTP des clients (protégé, visible de tous
// les rôles authentifiés).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create crée un client.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	if in.NomSociete == "" {
		return badRequest(c, "nom_societe requis")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID retourne un client.
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// List retourne les clients, paginés.
func (h *ClientHandler) List(c *fiber.Ctx) error {
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

// Update met à jour partiellement un client.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime un client.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Client supprimé"})
}
