package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoPagos pagos de intereses y abonos a préstamos.
type GrupoPagos struct {
	c *Cliente
}

// Crear registra un pago.
func (g *GrupoPagos) Crear(ctx context.Context, contexto string, pago any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodPost, "/pagos", pago, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mis lista los pagos del cliente autenticado.
func (g *GrupoPagos) Mis(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/pagos/mis", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
