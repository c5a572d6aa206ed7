package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// EchangeHandler gère les fils de discussion attachés aux tickets,
// portabilités et tâches de production (protégé). Les routes sont imbriquées
// sous le parent; le type de parent est fixé à l'enregistrement de la route.
type EchangeHandler struct {
	uc *usecase.EchangeUseCase
}

// NewEchangeHandler construit le handler.
func NewEchangeHandler(uc *usecase.EchangeUseCase) *EchangeHandler {
	return &EchangeHandler{uc: uc}
}

// Create ajoute un message au fil du parent donné.
func (h *EchangeHandler) Create(parentType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateEchangeRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corps invalide")
		}
		if in.Message == "" {
			return badRequest(c, "message requis")
		}
		out, err := h.uc.Create(c.Context(), GetCaller(c), parentType, c.Params("id"), in)
		if err != nil {
			return mapErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListByParent retourne le fil du parent, du plus ancien au plus récent.
func (h *EchangeHandler) ListByParent(parentType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.ListByParent(c.Context(), GetCaller(c), parentType, c.Params("id"))
		if err != nil {
			return mapErr(c, err)
		}
		return c.JSON(out)
	}
}
