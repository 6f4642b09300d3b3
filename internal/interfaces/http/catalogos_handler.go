package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
)

// CatalogosHandler catálogos públicos: ubicaciones, tipos de documento y
// promociones vigentes.
type CatalogosHandler struct {
	api *backend.Cliente
}

// NewCatalogosHandler construye el handler de catálogos.
func NewCatalogosHandler(api *backend.Cliente) *CatalogosHandler {
	return &CatalogosHandler{api: api}
}

// Departamentos lista los departamentos del país.
func (h *CatalogosHandler) Departamentos(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Ubicaciones.Departamentos(c.Context(), GetContexto(c))
	})
}

// Ciudades lista las ciudades de un departamento.
func (h *CatalogosHandler) Ciudades(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Ubicaciones.Ciudades(c.Context(), GetContexto(c), c.Params("id"))
	})
}

// TiposDocumento lista los tipos de documento de identidad.
func (h *CatalogosHandler) TiposDocumento(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Documentos.Tipos(c.Context(), GetContexto(c))
	})
}

// Promociones lista las promociones vigentes de la tienda.
func (h *CatalogosHandler) Promociones(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Promociones.Activas(c.Context(), GetContexto(c))
	})
}

func (h *CatalogosHandler) reenviar(c *fiber.Ctx, llamada func() ([]byte, error)) error {
	out, err := llamada()
	if err != nil {
		return responderErrorBackend(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
