package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoContratos contratos de empeño y su firma.
type GrupoContratos struct {
	c *Cliente
}

// Obtener devuelve el contrato asociado a un préstamo.
func (g *GrupoContratos) Obtener(ctx context.Context, contexto, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/contratos/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Firmar envía la firma capturada (imagen en base64) para el contrato.
func (g *GrupoContratos) Firmar(ctx context.Context, contexto, id, firmaBase64 string) (json.RawMessage, error) {
	var out json.RawMessage
	err := g.c.hacer(ctx, contexto, http.MethodPost, "/contratos/"+id+"/firmar",
		map[string]string{"firma": firmaBase64}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
