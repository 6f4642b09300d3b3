package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
)

// responderErrorBackend traduce los errores de la capa saliente a respuestas
// HTTP: los mensajes de validación del backend se entregan tal cual; la caída
// del backend degrada a un genérico "no se pudo contactar al servidor".
func responderErrorBackend(c *fiber.Ctx, err error) error {
	var eb *backend.ErrorBackend
	switch {
	case errors.Is(err, domain.ErrSesionExpirada):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "SESSION_EXPIRED", Message: domain.ErrSesionExpirada.Error(),
		})
	case errors.As(err, &eb):
		return c.Status(eb.Status).JSON(dto.ErrorResponse{
			Code: "BACKEND", Message: eb.Mensaje,
		})
	case errors.Is(err, domain.ErrBackendNoDisponible):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "BACKEND_UNREACHABLE", Message: domain.ErrBackendNoDisponible.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
