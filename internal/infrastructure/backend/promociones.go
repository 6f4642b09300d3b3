package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoPromociones promociones de descuento de la tienda.
type GrupoPromociones struct {
	c *Cliente
}

// Activas lista las promociones vigentes.
func (g *GrupoPromociones) Activas(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/promociones/activas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
