package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
)

var _ repository.AlmacenLocal = (*AlmacenLocal)(nil)

// AlmacenLocal implementación en memoria de AlmacenLocal: driver por defecto
// en desarrollo y doble de prueba en los tests (no toca almacenamiento real).
type AlmacenLocal struct {
	mu    sync.RWMutex
	datos map[string]map[string]string
}

// New construye el almacén vacío.
func New() *AlmacenLocal {
	return &AlmacenLocal{datos: make(map[string]map[string]string)}
}

// Obtener devuelve el valor de la clave; cadena vacía si no existe.
func (a *AlmacenLocal) Obtener(_ context.Context, contexto, clave string) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.datos[contexto][clave], nil
}

// Guardar escribe el valor; gana la última escritura.
func (a *AlmacenLocal) Guardar(_ context.Context, contexto, clave, valor string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.datos[contexto] == nil {
		a.datos[contexto] = make(map[string]string)
	}
	a.datos[contexto][clave] = valor
	return nil
}

// Eliminar borra la clave; no es error que no exista.
func (a *AlmacenLocal) Eliminar(_ context.Context, contexto, clave string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.datos[contexto], clave)
	return nil
}

// Claves devuelve las claves presentes para un contexto (solo para tests).
func (a *AlmacenLocal) Claves(contexto string) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	claves := make([]string, 0, len(a.datos[contexto]))
	for k := range a.datos[contexto] {
		claves = append(claves, k)
	}
	return claves
}
