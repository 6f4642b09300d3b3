package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoAdmin back-office de administración.
type GrupoAdmin struct {
	c *Cliente
}

// PrestamosPendientes lista los préstamos a la espera de evaluación.
func (g *GrupoAdmin) PrestamosPendientes(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/admin/prestamos/pendientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActualizarPrestamo cambia el estado u oferta de un préstamo.
func (g *GrupoAdmin) ActualizarPrestamo(ctx context.Context, contexto, id string, datos any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodPut, "/admin/prestamos/"+id, datos, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Clientes lista los clientes registrados.
func (g *GrupoAdmin) Clientes(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/admin/clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Metricas devuelve los indicadores del tablero de administración.
func (g *GrupoAdmin) Metricas(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/admin/metricas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
