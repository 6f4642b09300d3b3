package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoArticulos artículos que el cliente ofrece en empeño.
type GrupoArticulos struct {
	c *Cliente
}

// Crear registra un artículo para empeño con sus imágenes (multipart).
func (g *GrupoArticulos) Crear(ctx context.Context, contexto string, campos map[string]string, imagenes []ArchivoSubida) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacerMultipart(ctx, contexto, "/articulos", campos, imagenes, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mis lista los artículos del cliente autenticado.
func (g *GrupoArticulos) Mis(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/articulos/mis", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener devuelve el detalle de un artículo.
func (g *GrupoArticulos) Obtener(ctx context.Context, contexto, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/articulos/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
