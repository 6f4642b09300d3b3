package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoPrestamos préstamos de empeño: evaluación y respuesta a ofertas.
type GrupoPrestamos struct {
	c *Cliente
}

// Mis lista los préstamos del cliente autenticado.
func (g *GrupoPrestamos) Mis(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/prestamos/mis", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener devuelve el detalle de un préstamo.
func (g *GrupoPrestamos) Obtener(ctx context.Context, contexto, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/prestamos/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Evaluar solicita la evaluación del préstamo (tasación del artículo).
func (g *GrupoPrestamos) Evaluar(ctx context.Context, contexto, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodPost, "/prestamos/"+id+"/evaluar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Responder acepta o rechaza la oferta de préstamo.
func (g *GrupoPrestamos) Responder(ctx context.Context, contexto, id string, aceptar bool) (json.RawMessage, error) {
	var out json.RawMessage
	err := g.c.hacer(ctx, contexto, http.MethodPost, "/prestamos/"+id+"/respuesta",
		map[string]bool{"aceptar": aceptar}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
