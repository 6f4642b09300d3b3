package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/cart"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/config"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sesiones *session.SesionUseCase
	Carrito  *cart.CarritoUseCase
	API      *backend.Cliente
	Contexto config.ContextoConfig
	Log      *logger.Logger
}

// Router registra las rutas del shell.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ContextoMiddleware(deps.Contexto))

	// Sesión (público)
	sesionHandler := NewSesionHandler(deps.Sesiones, deps.API, deps.Log)
	sesion := api.Group("/sesion")
	sesion.Post("/login", sesionHandler.Login)
	sesion.Post("/logout", sesionHandler.Logout)
	sesion.Get("/", sesionHandler.Obtener)
	api.Post("/clientes/registro", sesionHandler.Registrar)

	// Catálogos (público)
	catalogosHandler := NewCatalogosHandler(deps.API)
	catalogos := api.Group("/catalogos")
	catalogos.Get("/departamentos", catalogosHandler.Departamentos)
	catalogos.Get("/departamentos/:id/ciudades", catalogosHandler.Ciudades)
	catalogos.Get("/tipos-documento", catalogosHandler.TiposDocumento)
	catalogos.Get("/promociones", catalogosHandler.Promociones)

	// Carrito (público: funciona igual para visitantes anónimos)
	carritoHandler := NewCarritoHandler(deps.Carrito, deps.API)
	carrito := api.Group("/carrito")
	carrito.Get("/", carritoHandler.Obtener)
	carrito.Delete("/", carritoHandler.Vaciar)
	carrito.Post("/lineas", carritoHandler.Agregar)
	carrito.Delete("/lineas/:id", carritoHandler.Quitar)
	carrito.Put("/panel", carritoHandler.Panel)

	// Tienda: catálogo público, checkout protegido
	tiendaHandler := NewTiendaHandler(deps.Carrito, deps.Sesiones, deps.API)
	api.Get("/tienda/productos", tiendaHandler.Productos)
	api.Get("/tienda/productos/:id", tiendaHandler.Producto)
	api.Post("/tienda/pedido", RequiereAutenticado(deps.Sesiones), tiendaHandler.CrearPedido)

	// Empeño (protegido: solo clientes autenticados)
	empenoHandler := NewEmpenoHandler(deps.API)
	empeno := api.Group("/empeno", RequiereAutenticado(deps.Sesiones))
	empeno.Post("/articulos", empenoHandler.CrearArticulo)
	empeno.Get("/articulos", empenoHandler.MisArticulos)
	empeno.Get("/articulos/:id", empenoHandler.ObtenerArticulo)
	empeno.Get("/prestamos", empenoHandler.MisPrestamos)
	empeno.Get("/prestamos/:id", empenoHandler.ObtenerPrestamo)
	empeno.Post("/prestamos/:id/evaluar", empenoHandler.EvaluarPrestamo)
	empeno.Post("/prestamos/:id/respuesta", empenoHandler.ResponderPrestamo)
	empeno.Get("/contratos/:id", empenoHandler.ObtenerContrato)
	empeno.Post("/contratos/:id/firmar", empenoHandler.FirmarContrato)
	empeno.Post("/pagos", empenoHandler.CrearPago)
	empeno.Get("/pagos", empenoHandler.MisPagos)
	empeno.Get("/compras", empenoHandler.MisCompras)

	// Administración (protegido: solo administradores)
	adminHandler := NewAdminHandler(deps.API)
	admin := api.Group("/admin", RequiereAdministrador(deps.Sesiones))
	admin.Get("/prestamos/pendientes", adminHandler.PrestamosPendientes)
	admin.Put("/prestamos/:id", adminHandler.ActualizarPrestamo)
	admin.Get("/clientes", adminHandler.Clientes)
	admin.Get("/metricas", adminHandler.Metricas)
}
