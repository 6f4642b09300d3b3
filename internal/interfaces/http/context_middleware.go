package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/config"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/contexttoken"
)

// LocalContexto clave de Locals con el ID de contexto de navegador.
const LocalContexto = "contexto"

// CookieContexto nombre de la cookie firmada que identifica el contexto.
const CookieContexto = "te_contexto"

// ContextoMiddleware garantiza que toda petición tenga un contexto de
// navegador: valida la cookie firmada o emite una nueva con un uuid fresco.
// El contexto es el análogo de "este localStorage": todo el estado de sesión y
// carrito cuelga de él.
func ContextoMiddleware(cfg config.ContextoConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if crudo := c.Cookies(CookieContexto); crudo != "" {
			if id, err := contexttoken.Parsear(cfg.Secret, crudo); err == nil {
				c.Locals(LocalContexto, id)
				return c.Next()
			}
			// Cookie inválida o expirada: se emite un contexto nuevo.
		}

		id := uuid.New().String()
		firmado, err := contexttoken.Generar(cfg.Secret, id, cfg.Issuer, cfg.ExpHours)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code: "CONTEXT_ERROR", Message: "no se pudo emitir el contexto de navegación",
			})
		}
		c.Cookie(&fiber.Cookie{
			Name:     CookieContexto,
			Value:    firmado,
			HTTPOnly: true,
			SameSite: "Lax",
			MaxAge:   cfg.ExpHours * 3600,
		})
		c.Locals(LocalContexto, id)
		return c.Next()
	}
}

// GetContexto devuelve el ID de contexto puesto por ContextoMiddleware.
func GetContexto(c *fiber.Ctx) string {
	v := c.Locals(LocalContexto)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
