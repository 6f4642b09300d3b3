package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

// CarritoUseCase mantiene el carrito por contexto de navegador: un conjunto
// ordenado de líneas con clave idProductoTienda, espejado al almacén local
// tras cada mutación. El panel lateral (panelAbierto) es estado efímero de UI
// y no se persiste.
type CarritoUseCase struct {
	almacen repository.AlmacenLocal
	log     *logger.Logger

	mu      sync.Mutex
	estados map[string]*estadoCarrito
}

type estadoCarrito struct {
	lineas       []entity.LineaCarrito
	panelAbierto bool
}

// NewCarritoUseCase construye el servicio de carrito.
func NewCarritoUseCase(almacen repository.AlmacenLocal, log *logger.Logger) *CarritoUseCase {
	return &CarritoUseCase{
		almacen: almacen,
		log:     log,
		estados: make(map[string]*estadoCarrito),
	}
}

// Agregar añade el producto al final del carrito con Cantidad fija en 1.
// Si el producto ya está presente no se duplica, pero en ambos casos el panel
// del carrito queda abierto: acoplamiento de UX deliberado, no un error.
func (uc *CarritoUseCase) Agregar(ctx context.Context, contexto string, linea entity.LineaCarrito) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	est := uc.estado(ctx, contexto)
	est.panelAbierto = true

	for _, l := range est.lineas {
		if l.IDProductoTienda == linea.IDProductoTienda {
			return
		}
	}
	linea.Cantidad = 1
	est.lineas = append(est.lineas, linea.Clone())
	uc.persistir(ctx, contexto, est)
}

// Quitar elimina la línea con el ID dado; si no existe no hace nada.
func (uc *CarritoUseCase) Quitar(ctx context.Context, contexto, idProductoTienda string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	est := uc.estado(ctx, contexto)

	filtradas := est.lineas[:0]
	for _, l := range est.lineas {
		if l.IDProductoTienda != idProductoTienda {
			filtradas = append(filtradas, l)
		}
	}
	if len(filtradas) == len(est.lineas) {
		return
	}
	est.lineas = filtradas
	uc.persistir(ctx, contexto, est)
}

// Vaciar deja el carrito vacío (se invoca tras un checkout exitoso).
func (uc *CarritoUseCase) Vaciar(ctx context.Context, contexto string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	est := uc.estado(ctx, contexto)
	est.lineas = nil
	uc.persistir(ctx, contexto, est)
}

// Cantidad devuelve el número de líneas (la cantidad por línea es siempre 1).
func (uc *CarritoUseCase) Cantidad(ctx context.Context, contexto string) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.estado(ctx, contexto).lineas)
}

// Total suma precioVentaTienda de todas las líneas como decimal exacto.
// Un precio no parseable suma cero y se registra (no debería ocurrir: los
// precios vienen del catálogo del backend).
func (uc *CarritoUseCase) Total(ctx context.Context, contexto string) decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	total := decimal.Zero
	for _, l := range uc.estado(ctx, contexto).lineas {
		precio, err := decimal.NewFromString(l.PrecioVentaTienda)
		if err != nil {
			uc.log.Warn().Str("idProductoTienda", l.IDProductoTienda).
				Str("precio", l.PrecioVentaTienda).Msg("precio de línea no parseable")
			continue
		}
		total = total.Add(precio)
	}
	return total
}

// Contiene indica si el producto ya está en el carrito.
func (uc *CarritoUseCase) Contiene(ctx context.Context, contexto, idProductoTienda string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, l := range uc.estado(ctx, contexto).lineas {
		if l.IDProductoTienda == idProductoTienda {
			return true
		}
	}
	return false
}

// Lineas devuelve las líneas en orden de inserción, como copias profundas.
func (uc *CarritoUseCase) Lineas(ctx context.Context, contexto string) []entity.LineaCarrito {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	est := uc.estado(ctx, contexto)
	out := make([]entity.LineaCarrito, 0, len(est.lineas))
	for _, l := range est.lineas {
		out = append(out, l.Clone())
	}
	return out
}

// PanelAbierto indica si el panel lateral del carrito está abierto.
func (uc *CarritoUseCase) PanelAbierto(ctx context.Context, contexto string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.estado(ctx, contexto).panelAbierto
}

// Panel abre o cierra el panel lateral.
func (uc *CarritoUseCase) Panel(ctx context.Context, contexto string, abierto bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.estado(ctx, contexto).panelAbierto = abierto
}

// estado devuelve el carrito en memoria del contexto, deserializándolo del
// almacén la primera vez. Un valor guardado corrupto se descarta y el carrito
// arranca vacío: se registra, no se propaga. Llamar con uc.mu tomado.
func (uc *CarritoUseCase) estado(ctx context.Context, contexto string) *estadoCarrito {
	if est, ok := uc.estados[contexto]; ok {
		return est
	}

	est := &estadoCarrito{}
	crudo, err := uc.almacen.Obtener(ctx, contexto, repository.ClaveCarrito)
	if err != nil {
		uc.log.Warn().Err(err).Msg("lectura del carrito almacenado")
	} else if crudo != "" {
		var lineas []entity.LineaCarrito
		if err := json.Unmarshal([]byte(crudo), &lineas); err != nil {
			uc.log.Warn().Err(err).Str("contexto", contexto).Msg("carrito almacenado corrupto, se descarta")
			uc.borrar(ctx, contexto)
		} else {
			est.lineas = lineas
		}
	}
	uc.estados[contexto] = est
	return est
}

// persistir serializa el carrito completo al almacén. Llamar con uc.mu tomado.
func (uc *CarritoUseCase) persistir(ctx context.Context, contexto string, est *estadoCarrito) {
	lineas := est.lineas
	if lineas == nil {
		lineas = []entity.LineaCarrito{}
	}
	crudo, err := json.Marshal(lineas)
	if err != nil {
		uc.log.Error().Err(err).Msg("serialización del carrito")
		return
	}
	if err := uc.almacen.Guardar(ctx, contexto, repository.ClaveCarrito, string(crudo)); err != nil {
		uc.log.Warn().Err(err).Msg("escritura del carrito almacenado")
	}
}

func (uc *CarritoUseCase) borrar(ctx context.Context, contexto string) {
	if err := uc.almacen.Eliminar(ctx, contexto, repository.ClaveCarrito); err != nil {
		uc.log.Warn().Err(err).Msg("borrado del carrito corrupto")
	}
}
