package dto

import "github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"

// AgregarLineaRequest pide agregar un producto de la tienda al carrito.
// Solo viaja el ID: los campos de presentación se copian del catálogo en el
// servidor para que el cliente no pueda fijar su propio precio.
type AgregarLineaRequest struct {
	IDProductoTienda string `json:"idProductoTienda"`
}

// CarritoResponse estado completo del carrito del contexto.
type CarritoResponse struct {
	Lineas       []entity.LineaCarrito `json:"lineas"`
	Cantidad     int                   `json:"cantidad"`
	Total        string                `json:"total"`
	PanelAbierto bool                  `json:"panelAbierto"`
}

// PanelRequest abre o cierra el panel lateral del carrito.
type PanelRequest struct {
	Abierto bool `json:"abierto"`
}
