package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// ProductionHandler gère les requêtes HTTP des productions et de leurs tâches (protégé).
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construit le handler.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create crée une production avec ses tâches initiales ordonnées.
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
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

// GetByID retourne une production avec ses tâches.
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// List retourne les productions du périmètre de l'appelant, paginées.
func (h *ProductionHandler) List(c *fiber.Ctx) error {
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

// Update met à jour partiellement une production.
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), c.Params("id"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime une production et ses tâches.
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Production supprimée"})
}

// UpdateTache met à jour une tâche. Un changement de statut notifie sur la
// production parente.
func (h *ProductionHandler) UpdateTache(c *fiber.Ctx) error {
	var in dto.UpdateTacheRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	out, err := h.uc.UpdateTache(c.Context(), GetCaller(c), c.Params("tacheId"), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// DeleteTache supprime une tâche.
func (h *ProductionHandler) DeleteTache(c *fiber.Ctx) error {
	if err := h.uc.DeleteTache(c.Context(), GetCaller(c), c.Params("tacheId")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Tâche supprimée"})
}
