package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/dto"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

// SesionHandler maneja login, logout y consulta de la sesión del contexto.
type SesionHandler struct {
	sesiones *session.SesionUseCase
	api      *backend.Cliente
	log      *logger.Logger
}

// NewSesionHandler construye el handler de sesión.
func NewSesionHandler(sesiones *session.SesionUseCase, api *backend.Cliente, log *logger.Logger) *SesionHandler {
	return &SesionHandler{sesiones: sesiones, api: api, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         sesion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "correo y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/sesion/login [post]
func (h *SesionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Correo == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "correo y password son requeridos"})
	}

	contexto := GetContexto(c)
	out, err := h.api.Clientes.Login(c.Context(), contexto, in.Correo, in.Password)
	if err != nil {
		return responderErrorBackend(c, err)
	}

	h.sesiones.Login(c.Context(), contexto, out.Token, out.IDUsuario, out.TipoUsuario, out.Email)

	// Caché de perfil oportunista: si falla no bloquea el login.
	if perfil, err := h.api.Clientes.Perfil(c.Context(), contexto); err == nil {
		h.sesiones.GuardarPerfil(c.Context(), contexto, *perfil)
	} else {
		h.log.Debug().Err(err).Msg("perfil no cacheado tras login")
	}

	return c.JSON(dto.LoginResponse{
		Sesion:      h.vistaSesion(contexto),
		Redireccion: h.sesiones.ConsumirRedireccion(c.Context(), contexto),
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         sesion
// @Success      204
// @Router       /api/sesion/logout [post]
func (h *SesionHandler) Logout(c *fiber.Ctx) error {
	h.sesiones.Logout(c.Context(), GetContexto(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Obtener godoc
// @Summary      Consultar la sesión del contexto
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/sesion [get]
func (h *SesionHandler) Obtener(c *fiber.Ctx) error {
	contexto := GetContexto(c)
	h.sesiones.Resolver(c.Context(), contexto)
	return c.JSON(h.vistaSesion(contexto))
}

// Registrar godoc
// @Summary      Registrar cliente nuevo
// @Tags         sesion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "datos de registro"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes/registro [post]
func (h *SesionHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Correo == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "correo y password son requeridos"})
	}
	out, err := h.api.Clientes.Registrar(c.Context(), GetContexto(c), in)
	if err != nil {
		return responderErrorBackend(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusCreated).Send(out)
}

func (h *SesionHandler) vistaSesion(contexto string) dto.SesionResponse {
	s := h.sesiones.Actual(contexto)
	if !s.Autenticada() {
		return dto.SesionResponse{Autenticada: false}
	}
	return dto.SesionResponse{
		Autenticada: true,
		IDUsuario:   s.IDUsuario,
		TipoUsuario: s.TipoUsuario,
		Email:       s.Email,
	}
}
