package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/events"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/backend"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/memory"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/config"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

const ctxNav = "contexto-de-prueba"

func nuevoCliente(t *testing.T, srv *httptest.Server) (*backend.Cliente, *memory.AlmacenLocal, *events.Bus) {
	t.Helper()
	almacen := memory.New()
	bus := events.NewBus()
	cfg := config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5}
	return backend.NewCliente(cfg, almacen, bus, logger.Nop()), almacen, bus
}

// ──────────────────────────────────────────────────────────────────────────────
// Decoración de peticiones
// ──────────────────────────────────────────────────────────────────────────────

func TestBearer_SeAdjuntaSoloSiHayToken(t *testing.T) {
	var autorizacion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		autorizacion = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cli, almacen, _ := nuevoCliente(t, srv)
	ctx := context.Background()

	// Sin token: sin cabecera.
	_, err := cli.Tienda.Productos(ctx, ctxNav)
	require.NoError(t, err)
	assert.Empty(t, autorizacion)

	// Con token en el almacén del contexto: Bearer.
	require.NoError(t, almacen.Guardar(ctx, ctxNav, repository.ClaveToken, "tok1"))
	_, err = cli.Tienda.Productos(ctx, ctxNav)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok1", autorizacion)
}

func TestRutasFijas(t *testing.T) {
	var ruta, metodo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ruta, metodo = r.URL.Path, r.Method
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cli, _, _ := nuevoCliente(t, srv)
	ctx := context.Background()

	_, err := cli.Clientes.Login(ctx, ctxNav, "a@gmail.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, metodo)
	assert.Equal(t, "/clientes/login", ruta)

	_, err = cli.Tienda.CrearPedido(ctx, ctxNav, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "/tienda/pedido/crear", ruta)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desautenticación ambiental (401)
// ──────────────────────────────────────────────────────────────────────────────

func Test401_PublicaExpiracionYBorraElToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cli, almacen, bus := nuevoCliente(t, srv)
	ctx := context.Background()
	require.NoError(t, almacen.Guardar(ctx, ctxNav, repository.ClaveToken, "tok-caduco"))

	var expiraciones []events.SesionExpirada
	bus.Suscribir(func(ev events.SesionExpirada) { expiraciones = append(expiraciones, ev) })

	_, err := cli.Prestamos.Mis(ctx, ctxNav)
	require.ErrorIs(t, err, domain.ErrSesionExpirada)

	token, errGet := almacen.Obtener(ctx, ctxNav, repository.ClaveToken)
	require.NoError(t, errGet)
	assert.Empty(t, token, "el 401 debe eliminar el token del contexto")

	require.Len(t, expiraciones, 1)
	assert.Equal(t, ctxNav, expiraciones[0].Contexto)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorDeValidacion_MensajeTalCual(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"El correo ya está registrado"}`))
	}))
	defer srv.Close()

	cli, _, _ := nuevoCliente(t, srv)

	_, err := cli.Clientes.Registrar(context.Background(), ctxNav, map[string]string{})
	var be *backend.ErrorBackend
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Status)
	assert.Equal(t, "El correo ya está registrado", be.Mensaje)
}

func TestErrorSinCuerpoConocido_UsaElCuerpoCrudo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`algo salió mal`))
	}))
	defer srv.Close()

	cli, _, _ := nuevoCliente(t, srv)

	_, err := cli.Clientes.Registrar(context.Background(), ctxNav, map[string]string{})
	var be *backend.ErrorBackend
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "algo salió mal", be.Mensaje)
}

func TestBackendCaido_ErrorGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // servidor ya apagado

	cli, _, _ := nuevoCliente(t, srv)

	_, err := cli.Tienda.Productos(context.Background(), ctxNav)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBackendNoDisponible))
}

// ──────────────────────────────────────────────────────────────────────────────
// Formas de respuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestRespuesta_AceptaSobreDataYCrudo(t *testing.T) {
	producto := `{"idProductoTienda":"p1","nombre":"Anillo de oro","precioVentaTienda":"100.50","tipoArticulo":"Joya","imagenes":["/img/p1.jpg"]}`

	casos := map[string]string{
		"sobre data": `{"data":` + producto + `}`,
		"crudo":      producto,
	}
	for nombre, cuerpo := range casos {
		t.Run(nombre, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(cuerpo))
			}))
			defer srv.Close()

			cli, _, _ := nuevoCliente(t, srv)
			p, err := cli.Tienda.Producto(context.Background(), ctxNav, "p1")
			require.NoError(t, err)
			assert.Equal(t, "p1", p.IDProductoTienda)
			assert.Equal(t, backend.PrecioDecimal("100.50"), p.PrecioVentaTienda)
		})
	}
}

func TestPrecioDecimal_NumeroStringYNull(t *testing.T) {
	casos := []struct {
		crudo    string
		esperado backend.PrecioDecimal
	}{
		{`{"precioVentaTienda":100.5}`, "100.5"},
		{`{"precioVentaTienda":"100.50"}`, "100.50"},
		{`{"precioVentaTienda":null}`, ""},
	}
	for _, c := range casos {
		var p backend.ProductoTienda
		require.NoError(t, json.Unmarshal([]byte(c.crudo), &p))
		assert.Equal(t, c.esperado, p.PrecioVentaTienda)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Multipart
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearArticulo_EnviaMultipart(t *testing.T) {
	var (
		nombreCampo string
		archivo     string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		nombreCampo = r.FormValue("nombre")
		if f := r.MultipartForm.File["imagenes"]; len(f) > 0 {
			archivo = f[0].Filename
		}
		_, _ = w.Write([]byte(`{"id":"a1"}`))
	}))
	defer srv.Close()

	cli, _, _ := nuevoCliente(t, srv)

	_, err := cli.Articulos.Crear(context.Background(), ctxNav,
		map[string]string{"nombre": "Anillo de oro"},
		[]backend.ArchivoSubida{{Campo: "imagenes", Nombre: "anillo.jpg", Contenido: []byte("jpg")}})
	require.NoError(t, err)
	assert.Equal(t, "Anillo de oro", nombreCampo)
	assert.Equal(t, "anillo.jpg", archivo)
}
