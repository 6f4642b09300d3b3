package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/cart"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
)

// CarritoHandler maneja el carrito del contexto. El carrito funciona también
// sin sesión: igual que el localStorage de un visitante anónimo.
type CarritoHandler struct {
	carrito *cart.CarritoUseCase
	api     *backend.Cliente
}

// NewCarritoHandler construye el handler de carrito.
func NewCarritoHandler(carrito *cart.CarritoUseCase, api *backend.Cliente) *CarritoHandler {
	return &CarritoHandler{carrito: carrito, api: api}
}

// Obtener godoc
// @Summary      Estado del carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito [get]
func (h *CarritoHandler) Obtener(c *fiber.Ctx) error {
	return c.JSON(h.respuesta(c))
}

// Agregar godoc
// @Summary      Agregar un producto de la tienda al carrito
// @Description  Copia nombre, precio, tipo e imágenes desde el catálogo. Si el
// @Description  producto ya está en el carrito no se duplica, pero el panel
// @Description  queda abierto igual.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgregarLineaRequest  true  "idProductoTienda"
// @Success      200   {object}  dto.CarritoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/carrito/lineas [post]
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	var in dto.AgregarLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDProductoTienda == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idProductoTienda es requerido"})
	}

	contexto := GetContexto(c)
	linea := entity.LineaCarrito{IDProductoTienda: in.IDProductoTienda}
	if !h.carrito.Contiene(c.Context(), contexto, in.IDProductoTienda) {
		producto, err := h.api.Tienda.Producto(c.Context(), contexto, in.IDProductoTienda)
		if err != nil {
			return responderErrorBackend(c, err)
		}
		linea = entity.LineaCarrito{
			IDProductoTienda:  producto.IDProductoTienda,
			Nombre:            producto.Nombre,
			PrecioVentaTienda: string(producto.PrecioVentaTienda),
			TipoArticulo:      producto.TipoArticulo,
			Imagenes:          producto.Imagenes,
		}
	}
	h.carrito.Agregar(c.Context(), contexto, linea)
	return c.JSON(h.respuesta(c))
}

// Quitar godoc
// @Summary      Quitar una línea del carrito
// @Tags         carrito
// @Produce      json
// @Param        id   path  string  true  "idProductoTienda"
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito/lineas/{id} [delete]
func (h *CarritoHandler) Quitar(c *fiber.Ctx) error {
	h.carrito.Quitar(c.Context(), GetContexto(c), c.Params("id"))
	return c.JSON(h.respuesta(c))
}

// Vaciar godoc
// @Summary      Vaciar el carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito [delete]
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	h.carrito.Vaciar(c.Context(), GetContexto(c))
	return c.JSON(h.respuesta(c))
}

// Panel godoc
// @Summary      Abrir o cerrar el panel lateral del carrito
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PanelRequest  true  "abierto"
// @Success      200   {object}  dto.CarritoResponse
// @Router       /api/carrito/panel [put]
func (h *CarritoHandler) Panel(c *fiber.Ctx) error {
	var in dto.PanelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.carrito.Panel(c.Context(), GetContexto(c), in.Abierto)
	return c.JSON(h.respuesta(c))
}

func (h *CarritoHandler) respuesta(c *fiber.Ctx) dto.CarritoResponse {
	contexto := GetContexto(c)
	return dto.CarritoResponse{
		Lineas:       h.carrito.Lineas(c.Context(), contexto),
		Cantidad:     h.carrito.Cantidad(c.Context(), contexto),
		Total:        h.carrito.Total(c.Context(), contexto).StringFixed(2),
		PanelAbierto: h.carrito.PanelAbierto(c.Context(), contexto),
	}
}
