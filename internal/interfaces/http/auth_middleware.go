package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/access"
	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/pkg/jwt"
)

// Clé Locals de l'appelant résolu dans Fiber.
const LocalCaller = "caller"

// AuthMiddleware valide le Bearer Token JWT puis résout l'appelant (société
// comprise pour un demandeur) dans c.Locals. Les messages 401 sont ceux que
// le frontend historique attend.
func AuthMiddleware(jwtSecret string, resolver *access.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Token manquant"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Token manquant"})
		}
		identity, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Token invalide"})
		}
		caller, err := resolver.ResolveCaller(c.Context(), identity)
		if err != nil {
			return mapErr(c, err)
		}
		c.Locals(LocalCaller, caller)
		return c.Next()
	}
}

// AgentOnly refuse les appelants non agents. À placer après AuthMiddleware.
func AgentOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetCaller(c).EstAgent() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Detail: "accès réservé aux agents"})
		}
		return c.Next()
	}
}

// GetCaller retourne l'appelant du contexte (après AuthMiddleware).
func GetCaller(c *fiber.Ctx) access.Caller {
	v := c.Locals(LocalCaller)
	if v == nil {
		return access.Caller{}
	}
	caller, _ := v.(access.Caller)
	return caller
}
