package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
)

// AdminHandler back-office de administración; todas las rutas van detrás del
// guard de administrador.
type AdminHandler struct {
	api *backend.Cliente
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(api *backend.Cliente) *AdminHandler {
	return &AdminHandler{api: api}
}

// PrestamosPendientes lista los préstamos a la espera de evaluación.
func (h *AdminHandler) PrestamosPendientes(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Admin.PrestamosPendientes(c.Context(), GetContexto(c))
	})
}

// ActualizarPrestamo cambia el estado u oferta de un préstamo.
func (h *AdminHandler) ActualizarPrestamo(c *fiber.Ctx) error {
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Admin.ActualizarPrestamo(c.Context(), GetContexto(c), c.Params("id"), in)
	})
}

// Clientes lista los clientes registrados.
func (h *AdminHandler) Clientes(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Admin.Clientes(c.Context(), GetContexto(c))
	})
}

// Metricas devuelve los indicadores del tablero.
func (h *AdminHandler) Metricas(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Admin.Metricas(c.Context(), GetContexto(c))
	})
}

func (h *AdminHandler) reenviar(c *fiber.Ctx, llamada func() ([]byte, error)) error {
	out, err := llamada()
	if err != nil {
		return responderErrorBackend(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
