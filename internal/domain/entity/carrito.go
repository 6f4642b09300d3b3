package entity

// LineaCarrito es un artículo único de la tienda reservado para compra.
// Los campos de presentación se copian del catálogo al momento de agregar;
// Cantidad es siempre 1 porque cada artículo empeñado es una pieza física
// irrepetible.
type LineaCarrito struct {
	IDProductoTienda  string   `json:"idProductoTienda"`
	Nombre            string   `json:"nombre"`
	PrecioVentaTienda string   `json:"precioVentaTienda"` // decimal serializado como string
	TipoArticulo      string   `json:"tipoArticulo"`
	Imagenes          []string `json:"imagenes"`
	Cantidad          int      `json:"cantidad"`
}

// Clone devuelve una copia profunda de la línea.
func (l LineaCarrito) Clone() LineaCarrito {
	c := l
	if l.Imagenes != nil {
		c.Imagenes = make([]string, len(l.Imagenes))
		copy(c.Imagenes, l.Imagenes)
	}
	return c
}
