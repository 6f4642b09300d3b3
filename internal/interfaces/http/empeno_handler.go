package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
)

// EmpenoHandler flujo de empeño del cliente: artículos, préstamos, contratos y
// pagos. Todas las rutas van detrás del guard de autenticado; el handler solo
// reenvía al backend.
type EmpenoHandler struct {
	api *backend.Cliente
}

// NewEmpenoHandler construye el handler de empeño.
func NewEmpenoHandler(api *backend.Cliente) *EmpenoHandler {
	return &EmpenoHandler{api: api}
}

// CrearArticulo godoc
// @Summary      Ofrecer un artículo en empeño (multipart con imágenes)
// @Tags         empeno
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/empeno/articulos [post]
func (h *EmpenoHandler) CrearArticulo(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}

	campos := make(map[string]string, len(form.Value))
	for k, vs := range form.Value {
		if len(vs) > 0 {
			campos[k] = vs[0]
		}
	}

	var imagenes []backend.ArchivoSubida
	for _, fh := range form.File["imagenes"] {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer " + fh.Filename})
		}
		contenido, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer " + fh.Filename})
		}
		imagenes = append(imagenes, backend.ArchivoSubida{Campo: "imagenes", Nombre: fh.Filename, Contenido: contenido})
	}

	out, err := h.api.Articulos.Crear(c.Context(), GetContexto(c), campos, imagenes)
	if err != nil {
		return responderErrorBackend(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusCreated).Send(out)
}

// MisArticulos lista los artículos del cliente.
func (h *EmpenoHandler) MisArticulos(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Articulos.Mis(c.Context(), GetContexto(c))
	})
}

// ObtenerArticulo detalle de un artículo.
func (h *EmpenoHandler) ObtenerArticulo(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Articulos.Obtener(c.Context(), GetContexto(c), c.Params("id"))
	})
}

// MisPrestamos lista los préstamos del cliente.
func (h *EmpenoHandler) MisPrestamos(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Prestamos.Mis(c.Context(), GetContexto(c))
	})
}

// ObtenerPrestamo detalle de un préstamo.
func (h *EmpenoHandler) ObtenerPrestamo(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Prestamos.Obtener(c.Context(), GetContexto(c), c.Params("id"))
	})
}

// EvaluarPrestamo solicita la tasación del préstamo.
func (h *EmpenoHandler) EvaluarPrestamo(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Prestamos.Evaluar(c.Context(), GetContexto(c), c.Params("id"))
	})
}

// ResponderPrestamo acepta o rechaza la oferta.
func (h *EmpenoHandler) ResponderPrestamo(c *fiber.Ctx) error {
	var in struct {
		Aceptar bool `json:"aceptar"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Prestamos.Responder(c.Context(), GetContexto(c), c.Params("id"), in.Aceptar)
	})
}

// ObtenerContrato devuelve el contrato de un préstamo.
func (h *EmpenoHandler) ObtenerContrato(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Contratos.Obtener(c.Context(), GetContexto(c), c.Params("id"))
	})
}

// FirmarContrato envía la firma capturada en el canvas.
func (h *EmpenoHandler) FirmarContrato(c *fiber.Ctx) error {
	var in struct {
		Firma string `json:"firma"`
	}
	if err := c.BodyParser(&in); err != nil || in.Firma == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "firma es requerida"})
	}
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Contratos.Firmar(c.Context(), GetContexto(c), c.Params("id"), in.Firma)
	})
}

// CrearPago registra un pago de intereses o abono.
func (h *EmpenoHandler) CrearPago(c *fiber.Ctx) error {
	var in map[string]any
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Pagos.Crear(c.Context(), GetContexto(c), in)
	})
}

// MisPagos lista los pagos del cliente.
func (h *EmpenoHandler) MisPagos(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Pagos.Mis(c.Context(), GetContexto(c))
	})
}

// MisCompras lista las compras del cliente en la tienda.
func (h *EmpenoHandler) MisCompras(c *fiber.Ctx) error {
	return h.reenviar(c, func() ([]byte, error) {
		return h.api.Compras.Mis(c.Context(), GetContexto(c))
	})
}

func (h *EmpenoHandler) reenviar(c *fiber.Ctx, llamada func() ([]byte, error)) error {
	out, err := llamada()
	if err != nil {
		return responderErrorBackend(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
