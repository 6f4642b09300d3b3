package repository

import "context"

// Claves del almacén local, idénticas a las que usaba la SPA en localStorage.
const (
	ClaveToken        = "token"
	ClaveIDUsuario    = "userId"
	ClaveTipoUsuario  = "userType"
	ClaveEmail        = "userEmail"
	ClaveRedireccion  = "redirectAfterLogin"
	ClaveCarrito      = "cart"
	ClaveNombre       = "userName"
	ClaveTelefono     = "userPhone"
	ClaveDireccion    = "userAddress"
	ClaveCiudad       = "userCity"
	ClaveDepartamento = "userDepartment"
	ClaveCodigoPostal = "userPostalCode"
)

// AlmacenLocal es el almacén persistente de clave/valor por contexto de
// navegador (el análogo de localStorage). Valores siempre string; una clave
// ausente se lee como cadena vacía, igual que un getItem nulo. No hay
// sincronización entre escritores concurrentes del mismo contexto: gana la
// última escritura.
type AlmacenLocal interface {
	Obtener(ctx context.Context, contexto, clave string) (string, error)
	Guardar(ctx context.Context, contexto, clave, valor string) error
	Eliminar(ctx context.Context, contexto, clave string) error
}
