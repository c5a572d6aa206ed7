package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/auth"
	"github.com/jrossignol/voip-backoffice/internal/application/dto"
)

// AuthHandler gère l'authentification (route publique).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construit le handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login authentifie par email/mot de passe et retourne un jeton d'accès.
// Agents et demandeurs passent par la même route; le rôle sort dans la réponse.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corps invalide")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email et mot de passe requis")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return mapErr(c, err)
	}
	return c.JSON(out)
}
