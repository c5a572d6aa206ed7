package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// FichierHandler gère les pièces jointes (protégé). Upload et listing sont
// imbriqués sous le parent; téléchargement et suppression sont à plat.
type FichierHandler struct {
	uc *usecase.FichierUseCase
}

// NewFichierHandler construit le handler.
func NewFichierHandler(uc *usecase.FichierUseCase) *FichierHandler {
	return &FichierHandler{uc: uc}
}

// Create ajoute une pièce jointe (contenu base64) au parent donné.
func (h *FichierHandler) Create(parentType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateFichierRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "corps invalide")
		}
		if in.NomFichier == "" || in.ContenuBase64 == "" {
			return badRequest(c, "nom_fichier et contenu_base64 requis")
		}
		out, err := h.uc.Create(c.Context(), GetCaller(c), parentType, c.Params("id"), in)
		if err != nil {
			return mapErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListByParent retourne les métadonnées des pièces jointes du parent.
func (h *FichierHandler) ListByParent(parentType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.ListByParent(c.Context(), GetCaller(c), parentType, c.Params("id"))
		if err != nil {
			return mapErr(c, err)
		}
		return c.JSON(out)
	}
}

// GetByID retourne une pièce jointe complète, contenu compris.
func (h *FichierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}

// Delete supprime une pièce jointe.
func (h *FichierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return mapErr(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Fichier supprimé"})
}
