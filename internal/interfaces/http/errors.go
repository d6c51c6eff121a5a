package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
)

// respondError traduz erros de domínio para status HTTP com corpo {"error": ...}.
// 400 validação, 404 id desconhecido, 409 guards/conflitos, 401 credencial ruim,
// 500 falha de armazenamento.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidToken):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrCategoryInUse),
		errors.Is(err, domain.ErrTableOccupied),
		errors.Is(err, domain.ErrCommandClosed),
		errors.Is(err, domain.ErrEmptyCommand):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
