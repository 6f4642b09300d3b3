package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoCompras historial de compras en la tienda.
type GrupoCompras struct {
	c *Cliente
}

// Mis lista las compras del cliente autenticado.
func (g *GrupoCompras) Mis(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/compras/mis", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
