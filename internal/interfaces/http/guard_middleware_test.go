package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/events"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/TiendaEmpeno-bff/internal/interfaces/http"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testContexto = "contexto-de-prueba"

// conContexto simula el ContextoMiddleware fijando un contexto conocido.
func conContexto(c *fiber.Ctx) error {
	c.Locals(apphttp.LocalContexto, testContexto)
	return c.Next()
}

// buildGuardApp monta una app Fiber mínima con una ruta de cliente y una de
// administración, ambas detrás de sus guards.
func buildGuardApp(sesiones *session.SesionUseCase) *fiber.App {
	app := fiber.New()
	app.Get("/prestamos/mis-prestamos", conContexto, apphttp.RequiereAutenticado(sesiones), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/admin/prestamos", conContexto, apphttp.RequiereAdministrador(sesiones), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func nuevoEntorno(t *testing.T) (*session.SesionUseCase, *memory.AlmacenLocal) {
	t.Helper()
	almacen := memory.New()
	return session.NewSesionUseCase(almacen, events.NewBus(), logger.Nop()), almacen
}

func doGet(t *testing.T, app *fiber.App, ruta string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, ruta, nil), -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequiereAutenticado
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin sesión → 303 al login, con la ruta pendiente registrada.
func TestRequiereAutenticado_SinSesionRedirigeAlLogin(t *testing.T) {
	sesiones, almacen := nuevoEntorno(t)
	app := buildGuardApp(sesiones)

	resp := doGet(t, app, "/prestamos/mis-prestamos")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	pendiente, err := almacen.Obtener(context.Background(), testContexto, repository.ClaveRedireccion)
	require.NoError(t, err)
	assert.Equal(t, "/prestamos/mis-prestamos", pendiente,
		"la ruta bloqueada debe quedar como redirección pendiente")
}

// Caso 2: cliente autenticado → 200.
func TestRequiereAutenticado_ClienteAccede(t *testing.T) {
	sesiones, _ := nuevoEntorno(t)
	sesiones.Login(context.Background(), testContexto, "tok1", "5", entity.TipoCliente, "a@gmail.com")
	app := buildGuardApp(sesiones)

	resp := doGet(t, app, "/prestamos/mis-prestamos")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: administrador en página de cliente → 303 a /admin, nunca 200.
func TestRequiereAutenticado_AdminRedirigidoAlPanel(t *testing.T) {
	sesiones, almacen := nuevoEntorno(t)
	sesiones.Login(context.Background(), testContexto, "tok2", "1", entity.TipoAdministrador, "admin@gmail.com")
	app := buildGuardApp(sesiones)

	resp := doGet(t, app, "/prestamos/mis-prestamos")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	pendiente, err := almacen.Obtener(context.Background(), testContexto, repository.ClaveRedireccion)
	require.NoError(t, err)
	assert.Empty(t, pendiente, "no se guarda ruta pendiente: ya hay sesión")
}

// Caso 4: el guard resuelve la sesión persistida él mismo (Cargando -> Resuelta).
func TestRequiereAutenticado_ResuelveDesdeElAlmacen(t *testing.T) {
	sesiones, almacen := nuevoEntorno(t)
	ctx := context.Background()
	require.NoError(t, almacen.Guardar(ctx, testContexto, repository.ClaveToken, "tok1"))
	require.NoError(t, almacen.Guardar(ctx, testContexto, repository.ClaveIDUsuario, "5"))
	require.NoError(t, almacen.Guardar(ctx, testContexto, repository.ClaveTipoUsuario, entity.TipoCliente))
	require.NoError(t, almacen.Guardar(ctx, testContexto, repository.ClaveEmail, "a@gmail.com"))

	app := buildGuardApp(sesiones)
	resp := doGet(t, app, "/prestamos/mis-prestamos")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, session.EstadoResuelta, sesiones.Estado(testContexto))
}

// ──────────────────────────────────────────────────────────────────────────────
// RequiereAdministrador
// ──────────────────────────────────────────────────────────────────────────────

func TestRequiereAdministrador_AdminAccede(t *testing.T) {
	sesiones, _ := nuevoEntorno(t)
	sesiones.Login(context.Background(), testContexto, "tok2", "1", entity.TipoAdministrador, "admin@gmail.com")
	app := buildGuardApp(sesiones)

	resp := doGet(t, app, "/admin/prestamos")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequiereAdministrador_ClienteVaAlInicio(t *testing.T) {
	sesiones, _ := nuevoEntorno(t)
	sesiones.Login(context.Background(), testContexto, "tok1", "5", entity.TipoCliente, "a@gmail.com")
	app := buildGuardApp(sesiones)

	resp := doGet(t, app, "/admin/prestamos")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRequiereAdministrador_SinSesionVaAlLogin(t *testing.T) {
	sesiones, _ := nuevoEntorno(t)
	app := buildGuardApp(sesiones)

	resp := doGet(t, app, "/admin/prestamos")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
