package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/cart"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
)

// TiendaHandler catálogo de la tienda y checkout.
type TiendaHandler struct {
	carrito  *cart.CarritoUseCase
	sesiones *session.SesionUseCase
	api      *backend.Cliente
}

// NewTiendaHandler construye el handler de tienda.
func NewTiendaHandler(carrito *cart.CarritoUseCase, sesiones *session.SesionUseCase, api *backend.Cliente) *TiendaHandler {
	return &TiendaHandler{carrito: carrito, sesiones: sesiones, api: api}
}

// Productos godoc
// @Summary      Catálogo de venta
// @Tags         tienda
// @Produce      json
// @Success      200  {array}  backend.ProductoTienda
// @Router       /api/tienda/productos [get]
func (h *TiendaHandler) Productos(c *fiber.Ctx) error {
	out, err := h.api.Tienda.Productos(c.Context(), GetContexto(c))
	if err != nil {
		return responderErrorBackend(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

// Producto godoc
// @Summary      Detalle de un producto de la tienda
// @Tags         tienda
// @Produce      json
// @Param        id   path  string  true  "idProductoTienda"
// @Success      200  {object}  backend.ProductoTienda
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tienda/productos/{id} [get]
func (h *TiendaHandler) Producto(c *fiber.Ctx) error {
	out, err := h.api.Tienda.Producto(c.Context(), GetContexto(c), c.Params("id"))
	if err != nil {
		return responderErrorBackend(c, err)
	}
	return c.JSON(out)
}

// PedidoRequest permite sobrescribir los datos de envío del checkout; si no se
// envían, se usan los del caché de perfil.
type PedidoRequest struct {
	Envio *entity.PerfilCliente `json:"envio"`
}

// CrearPedido godoc
// @Summary      Checkout: crear el pedido con las líneas del carrito
// @Description  Prellena el envío con el caché de perfil del almacén local.
// @Description  El carrito se vacía solo si el backend confirma el pedido.
// @Tags         tienda
// @Accept       json
// @Produce      json
// @Param        body  body  PedidoRequest  false  "datos de envío opcionales"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/tienda/pedido [post]
func (h *TiendaHandler) CrearPedido(c *fiber.Ctx) error {
	contexto := GetContexto(c)

	lineas := h.carrito.Lineas(c.Context(), contexto)
	if len(lineas) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	}

	var in PedidoRequest
	_ = c.BodyParser(&in) // cuerpo opcional
	envio := h.sesiones.LeerPerfil(c.Context(), contexto)
	if in.Envio != nil {
		envio = *in.Envio
	}

	pedido := map[string]any{
		"lineas": lineas,
		"envio":  envio,
		"total":  h.carrito.Total(c.Context(), contexto).StringFixed(2),
	}
	out, err := h.api.Tienda.CrearPedido(c.Context(), contexto, pedido)
	if err != nil {
		return responderErrorBackend(c, err)
	}

	h.carrito.Vaciar(c.Context(), contexto)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusCreated).Send(out)
}
