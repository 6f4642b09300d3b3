package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoDocumentos tipos de documento de identidad.
type GrupoDocumentos struct {
	c *Cliente
}

// Tipos lista los tipos de documento aceptados en el registro.
func (g *GrupoDocumentos) Tipos(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/tipos-documento", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
