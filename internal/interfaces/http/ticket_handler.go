package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// TicketHandler gère les requêtes HTTP des tickets de support (protégé).
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler construit le handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create crée un ticket. Un demandeur devient automatiquement le demandeur de
// référence; un agent doit fournir demandeur_id.
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	if in.Titre == "" || in.ClientID == "" {
		return badRequest(c, "titre et client_id requis")
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID retourne un ticket visible de l'appelant.
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// List retourne les tickets du périmètre de l'appelant, paginés.
func (h *TicketHandler) List(c *fiber.Ctx) error {
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

// Update met à jour partiellement un ticket. Le numéro n'est jamais modifiable.
func (h *TicketHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), c.Params("id"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime un ticket.
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Ticket supprimé"})
}
