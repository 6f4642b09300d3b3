package guard

import (
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
)

// Rutas de destino de las redirecciones de navegación.
const (
	RutaLogin  = "/login"
	RutaAdmin  = "/admin"
	RutaInicio = "/"
)

// Vista clasifica la página protegida que se intenta navegar.
type Vista int

const (
	// VistaCliente: página solo para clientes autenticados.
	VistaCliente Vista = iota
	// VistaAdmin: página del back-office de administración.
	VistaAdmin
)

// Accion resultado de evaluar el guard.
type Accion int

const (
	// AccionEsperar: el proveedor de sesión sigue en Cargando; mostrar
	// placeholder y suspender la decisión.
	AccionEsperar Accion = iota
	// AccionPermitir: renderizar el contenido protegido.
	AccionPermitir
	// AccionRedirigir: navegar a Decision.Destino.
	AccionRedirigir
)

// Decision de navegación. GuardarRuta indica que debe registrarse la ruta
// actual como redirección pendiente antes de ir al login.
type Decision struct {
	Accion      Accion
	Destino     string
	GuardarRuta bool
}

// Evaluar aplica el algoritmo común de ambos guards:
//   - Cargando: esperar.
//   - Sin autenticar: guardar la ruta y redirigir al login.
//   - VistaCliente con sesión de administrador: redirigir a /admin. Un
//     administrador nunca ve páginas de cliente; la política vive en la capa
//     de navegación a propósito.
//   - VistaAdmin sin rol de administrador: redirigir al inicio público.
//   - En cualquier otro caso: permitir.
func Evaluar(estado session.Estado, s *entity.Sesion, vista Vista) Decision {
	if estado == session.EstadoCargando {
		return Decision{Accion: AccionEsperar}
	}
	if !s.Autenticada() {
		return Decision{Accion: AccionRedirigir, Destino: RutaLogin, GuardarRuta: true}
	}
	switch vista {
	case VistaAdmin:
		if !s.EsAdministrador() {
			return Decision{Accion: AccionRedirigir, Destino: RutaInicio}
		}
	default:
		if s.EsAdministrador() {
			return Decision{Accion: AccionRedirigir, Destino: RutaAdmin}
		}
	}
	return Decision{Accion: AccionPermitir}
}
