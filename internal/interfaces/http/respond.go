package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jrossignol/voip-backoffice/internal/application/dto"
	"github.com/jrossignol/voip-backoffice/internal/domain"
)

// mapErr traduit une erreur de domaine en réponse HTTP. Les conflits et
// erreurs de validation sortent tous en 400 (contrat du frontend historique);
// tout le reste est un 500 générique sans détail interne.
func mapErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrSiretExists),
		errors.Is(err, domain.ErrDomaineExists),
		errors.Is(err, domain.ErrSocieteHasMembers),
		errors.Is(err, domain.ErrSelfDeletion):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: "erreur interne"})
	}
}

// badRequest raccourci pour les erreurs de parsing de corps ou de paramètre.
func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: detail})
}
