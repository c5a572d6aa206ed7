package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// DemandeurHandler gère les requêtes HTTP des demandeurs (protégé). Un
// demandeur ne voit et ne gère que les membres de sa société.
type DemandeurHandler struct {
	uc *usecase.DemandeurUseCase
}

// NewDemandeurHandler construit le handler.
func NewDemandeurHandler(uc *usecase.DemandeurUseCase) *DemandeurHandler {
	return &DemandeurHandler{uc: uc}
}

// Create crée un demandeur. Un non-agent crée toujours dans sa propre société.
func (h *DemandeurHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDemandeurRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email et mot de passe requis")
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID retourne un demandeur visible de l'appelant.
func (h *DemandeurHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// List retourne les demandeurs visibles de l'appelant, paginés.
func (h *DemandeurHandler) List(c *fiber.Ctx) error {
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

// Update met à jour partiellement un demandeur. Le changement de société est
// réservé aux agents.
func (h *DemandeurHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDemandeurRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), c.Params("id"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime un demandeur. L'auto-suppression est refusée aux non-agents.
func (h *DemandeurHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Demandeur supprimé"})
}
