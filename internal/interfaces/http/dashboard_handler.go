package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/usecase"
)

// DashboardHandler gère le tableau de bord (protégé).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats retourne les comptes par statut du périmètre de l'appelant. En cas
// d'indisponibilité de la base, la réponse est le jeu de repli (degraded).
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context(), GetCaller(c))
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}
