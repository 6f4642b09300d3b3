package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// GrupoUbicaciones departamentos y ciudades para formularios de envío.
type GrupoUbicaciones struct {
	c *Cliente
}

// Departamentos lista los departamentos del país.
func (g *GrupoUbicaciones) Departamentos(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/ubicaciones/departamentos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ciudades lista las ciudades de un departamento.
func (g *GrupoUbicaciones) Ciudades(ctx context.Context, contexto, idDepartamento string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/ubicaciones/departamentos/"+idDepartamento+"/ciudades", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
