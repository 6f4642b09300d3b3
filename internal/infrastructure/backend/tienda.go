package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// GrupoTienda catálogo de la tienda y creación de pedidos.
type GrupoTienda struct {
	c *Cliente
}

// PrecioDecimal acepta el precio como número JSON o como string: el backend ha
// devuelto ambas formas según el endpoint.
type PrecioDecimal string

// UnmarshalJSON implementa la tolerancia de forma.
func (p *PrecioDecimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*p = PrecioDecimal(v)
		return nil
	}
	if s == "null" {
		*p = ""
		return nil
	}
	*p = PrecioDecimal(s)
	return nil
}

// ProductoTienda artículo del catálogo de venta.
type ProductoTienda struct {
	IDProductoTienda  string        `json:"idProductoTienda"`
	Nombre            string        `json:"nombre"`
	PrecioVentaTienda PrecioDecimal `json:"precioVentaTienda"`
	TipoArticulo      string        `json:"tipoArticulo"`
	Imagenes          []string      `json:"imagenes"`
}

// Productos lista el catálogo completo (passthrough).
func (g *GrupoTienda) Productos(ctx context.Context, contexto string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/tienda/productos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Producto obtiene un artículo del catálogo por ID.
func (g *GrupoTienda) Producto(ctx context.Context, contexto, id string) (*ProductoTienda, error) {
	var out ProductoTienda
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/tienda/productos/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CrearPedido crea el pedido de compra de los artículos del carrito.
func (g *GrupoTienda) CrearPedido(ctx context.Context, contexto string, pedido any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodPost, "/tienda/pedido/crear", pedido, &out); err != nil {
		return nil, err
	}
	return out, nil
}
