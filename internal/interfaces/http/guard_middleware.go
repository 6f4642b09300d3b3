package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/guard"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
)

// RequiereAutenticado protege páginas de cliente: sin sesión redirige al login
// guardando la ruta pendiente; con sesión de administrador redirige a /admin
// (las páginas autenticadas son implícitamente solo de clientes).
func RequiereAutenticado(sesiones *session.SesionUseCase) fiber.Handler {
	return guardia(sesiones, guard.VistaCliente)
}

// RequiereAdministrador protege el back-office: sin sesión redirige al login;
// con sesión que no es de administrador redirige al inicio público.
func RequiereAdministrador(sesiones *session.SesionUseCase) fiber.Handler {
	return guardia(sesiones, guard.VistaAdmin)
}

func guardia(sesiones *session.SesionUseCase, vista guard.Vista) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contexto := GetContexto(c)
		// Sobre HTTP no hay placeholder de carga: Cargando se resuelve aquí
		// mismo con la lectura síncrona del almacén.
		sesiones.Resolver(c.Context(), contexto)

		d := guard.Evaluar(sesiones.Estado(contexto), sesiones.Actual(contexto), vista)
		switch d.Accion {
		case guard.AccionPermitir:
			return c.Next()
		case guard.AccionRedirigir:
			if d.GuardarRuta {
				sesiones.GuardarRedireccion(c.Context(), contexto, c.OriginalURL())
			}
			return c.Redirect(d.Destino, fiber.StatusSeeOther)
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "SESSION_LOADING", Message: "la sesión aún no está resuelta",
			})
		}
	}
}
