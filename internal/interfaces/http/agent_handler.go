package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// AgentHandler gère les requêtes HTTP des agents (réservé aux agents).
type AgentHandler struct {
	uc *usecase.AgentUseCase
}

// NewAgentHandler construit le handler.
func NewAgentHandler(uc *usecase.AgentUseCase) *AgentHandler {
	return &AgentHandler{uc: uc}
}

// Create crée un agent.
func (h *AgentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email et mot de passe requis")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID retourne un agent.
func (h *AgentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// List retourne les agents, paginés.
func (h *AgentHandler) List(c *fiber.Ctx) error {
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

// Update met à jour partiellement un agent.
func (h *AgentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime un agent.
func (h *AgentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Agent supprimé"})
}
