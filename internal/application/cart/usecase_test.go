package cart_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/cart"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/infrastructure/memory"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

const ctxNav = "contexto-de-prueba"

func nuevoCarrito(t *testing.T) (*cart.CarritoUseCase, *memory.AlmacenLocal) {
	t.Helper()
	almacen := memory.New()
	return cart.NewCarritoUseCase(almacen, logger.Nop()), almacen
}

func linea(id, precio string) entity.LineaCarrito {
	return entity.LineaCarrito{
		IDProductoTienda:  id,
		Nombre:            "Artículo " + id,
		PrecioVentaTienda: precio,
		TipoArticulo:      "Joya",
		Imagenes:          []string{"/img/" + id + ".jpg"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Unicidad y orden de inserción
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregar_SinDuplicadosYOrdenDeInsercion(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "10"))
	uc.Agregar(ctx, ctxNav, linea("b", "20"))
	uc.Agregar(ctx, ctxNav, linea("c", "30"))
	uc.Agregar(ctx, ctxNav, linea("a", "10")) // duplicado: no-op

	lineas := uc.Lineas(ctx, ctxNav)
	require.Len(t, lineas, 3, "agregar un duplicado no debe crear línea nueva")

	ids := []string{lineas[0].IDProductoTienda, lineas[1].IDProductoTienda, lineas[2].IDProductoTienda}
	assert.Equal(t, []string{"a", "b", "c"}, ids, "debe conservarse el orden de primera inserción")
	assert.Equal(t, 3, uc.Cantidad(ctx, ctxNav))
}

func TestAgregar_CantidadSiempreUno(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	l := linea("a", "10")
	l.Cantidad = 7 // el llamador no decide la cantidad
	uc.Agregar(ctx, ctxNav, l)

	require.Len(t, uc.Lineas(ctx, ctxNav), 1)
	assert.Equal(t, 1, uc.Lineas(ctx, ctxNav)[0].Cantidad)
}

// Caso del panel: agregar —aunque sea un duplicado— siempre abre el panel.
func TestAgregar_DuplicadoAbreElPanelIgual(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "10"))
	antes := uc.Lineas(ctx, ctxNav)

	uc.Panel(ctx, ctxNav, false)
	require.False(t, uc.PanelAbierto(ctx, ctxNav))

	uc.Agregar(ctx, ctxNav, linea("a", "10"))
	despues := uc.Lineas(ctx, ctxNav)

	assert.True(t, uc.PanelAbierto(ctx, ctxNav), "el no-op debe forzar panelAbierto=true")
	assert.Equal(t, antes, despues, "el contenido debe ser idéntico en valor")
}

// Las líneas devueltas son copias: mutarlas no toca el estado interno.
func TestLineas_DevuelveCopiasProfundas(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "10"))

	fuera := uc.Lineas(ctx, ctxNav)
	fuera[0].Nombre = "mutado"
	fuera[0].Imagenes[0] = "mutada"

	dentro := uc.Lineas(ctx, ctxNav)
	assert.Equal(t, "Artículo a", dentro[0].Nombre)
	assert.Equal(t, "/img/a.jpg", dentro[0].Imagenes[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Quitar y vaciar
// ──────────────────────────────────────────────────────────────────────────────

func TestQuitar_EliminaYConservaOrdenDelResto(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "10"))
	uc.Agregar(ctx, ctxNav, linea("b", "20"))
	uc.Agregar(ctx, ctxNav, linea("c", "30"))

	uc.Quitar(ctx, ctxNav, "b")
	lineas := uc.Lineas(ctx, ctxNav)
	require.Len(t, lineas, 2)
	assert.Equal(t, "a", lineas[0].IDProductoTienda)
	assert.Equal(t, "c", lineas[1].IDProductoTienda)

	uc.Quitar(ctx, ctxNav, "no-existe") // no-op
	assert.Equal(t, 2, uc.Cantidad(ctx, ctxNav))
}

func TestVaciar_DejaElCarritoVacio(t *testing.T) {
	uc, almacen := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "10"))
	uc.Vaciar(ctx, ctxNav)

	assert.Empty(t, uc.Lineas(ctx, ctxNav))
	assert.Equal(t, 0, uc.Cantidad(ctx, ctxNav))

	guardado, err := almacen.Obtener(ctx, ctxNav, repository.ClaveCarrito)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", guardado, "el vaciado también debe persistirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Total
// ──────────────────────────────────────────────────────────────────────────────

func TestTotal_SumaDecimalExacta(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "100.50"))
	uc.Agregar(ctx, ctxNav, linea("b", "49.50"))

	assert.Equal(t, "150.00", uc.Total(ctx, ctxNav).StringFixed(2))
}

func TestTotal_PrecioNoParseableSumaCero(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "100.50"))
	uc.Agregar(ctx, ctxNav, linea("b", "no-es-numero"))

	assert.Equal(t, "100.50", uc.Total(ctx, ctxNav).StringFixed(2))
}

func TestContiene(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "10"))
	assert.True(t, uc.Contiene(ctx, ctxNav, "a"))
	assert.False(t, uc.Contiene(ctx, ctxNav, "b"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia y recuperación
// ──────────────────────────────────────────────────────────────────────────────

// Cada mutación reserializa el carrito completo al almacén.
func TestPersistencia_EscrituraTrasCadaMutacion(t *testing.T) {
	uc, almacen := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, ctxNav, linea("a", "10"))
	uc.Agregar(ctx, ctxNav, linea("b", "20"))

	guardado, err := almacen.Obtener(ctx, ctxNav, repository.ClaveCarrito)
	require.NoError(t, err)

	var lineas []entity.LineaCarrito
	require.NoError(t, json.Unmarshal([]byte(guardado), &lineas))
	assert.Equal(t, uc.Lineas(ctx, ctxNav), lineas)
}

// Round-trip: un servicio nuevo sobre el mismo almacén reproduce el carrito.
func TestPersistencia_RoundTrip(t *testing.T) {
	almacen := memory.New()
	ctx := context.Background()

	uc1 := cart.NewCarritoUseCase(almacen, logger.Nop())
	uc1.Agregar(ctx, ctxNav, linea("a", "100.50"))
	uc1.Agregar(ctx, ctxNav, linea("b", "49.50"))

	uc2 := cart.NewCarritoUseCase(almacen, logger.Nop())
	assert.Equal(t, uc1.Lineas(ctx, ctxNav), uc2.Lineas(ctx, ctxNav))
	assert.Equal(t, "150.00", uc2.Total(ctx, ctxNav).StringFixed(2))
}

// Un valor corrupto en el almacén se descarta: carrito vacío, sin pánico.
func TestCarritoAlmacenadoCorrupto_IniciaVacio(t *testing.T) {
	almacen := memory.New()
	ctx := context.Background()
	require.NoError(t, almacen.Guardar(ctx, ctxNav, repository.ClaveCarrito, "not json"))

	uc := cart.NewCarritoUseCase(almacen, logger.Nop())
	assert.Empty(t, uc.Lineas(ctx, ctxNav))

	guardado, err := almacen.Obtener(ctx, ctxNav, repository.ClaveCarrito)
	require.NoError(t, err)
	assert.Empty(t, guardado, "el valor corrupto debe descartarse del almacén")
}

// Dos contextos de navegador no comparten carrito.
func TestContextosIndependientes(t *testing.T) {
	uc, _ := nuevoCarrito(t)
	ctx := context.Background()

	uc.Agregar(ctx, "contexto-1", linea("a", "10"))
	assert.Equal(t, 1, uc.Cantidad(ctx, "contexto-1"))
	assert.Equal(t, 0, uc.Cantidad(ctx, "contexto-2"))
}
