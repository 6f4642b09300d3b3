package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/guard"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/session"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
)

func sesionCliente() *entity.Sesion {
	return &entity.Sesion{Token: "tok1", IDUsuario: "5", TipoUsuario: entity.TipoCliente, Email: "a@gmail.com"}
}

func sesionAdmin() *entity.Sesion {
	return &entity.Sesion{Token: "tok2", IDUsuario: "1", TipoUsuario: entity.TipoAdministrador, Email: "admin@gmail.com"}
}

func TestEvaluar_CargandoEspera(t *testing.T) {
	for _, vista := range []guard.Vista{guard.VistaCliente, guard.VistaAdmin} {
		d := guard.Evaluar(session.EstadoCargando, nil, vista)
		assert.Equal(t, guard.AccionEsperar, d.Accion)
	}
}

func TestEvaluar_SinSesionRedirigeAlLoginYGuardaRuta(t *testing.T) {
	for _, vista := range []guard.Vista{guard.VistaCliente, guard.VistaAdmin} {
		d := guard.Evaluar(session.EstadoResuelta, nil, vista)
		assert.Equal(t, guard.AccionRedirigir, d.Accion)
		assert.Equal(t, guard.RutaLogin, d.Destino)
		assert.True(t, d.GuardarRuta)
	}
}

func TestEvaluar_SesionIncompletaNoAutentica(t *testing.T) {
	// Token sin idUsuario: no cuenta como sesión válida.
	s := &entity.Sesion{Token: "tok1"}
	d := guard.Evaluar(session.EstadoResuelta, s, guard.VistaCliente)
	assert.Equal(t, guard.AccionRedirigir, d.Accion)
	assert.Equal(t, guard.RutaLogin, d.Destino)
}

func TestEvaluar_ClienteAccedeVistaCliente(t *testing.T) {
	d := guard.Evaluar(session.EstadoResuelta, sesionCliente(), guard.VistaCliente)
	assert.Equal(t, guard.AccionPermitir, d.Accion)
}

// Un administrador autenticado nunca ve páginas de cliente: siempre /admin.
func TestEvaluar_AdminEnVistaClienteSiempreVaAlPanel(t *testing.T) {
	d := guard.Evaluar(session.EstadoResuelta, sesionAdmin(), guard.VistaCliente)
	assert.Equal(t, guard.AccionRedirigir, d.Accion)
	assert.Equal(t, guard.RutaAdmin, d.Destino)
	assert.False(t, d.GuardarRuta, "no hay ruta que retomar: la sesión ya existe")
}

func TestEvaluar_AdminAccedeVistaAdmin(t *testing.T) {
	d := guard.Evaluar(session.EstadoResuelta, sesionAdmin(), guard.VistaAdmin)
	assert.Equal(t, guard.AccionPermitir, d.Accion)
}

func TestEvaluar_ClienteEnVistaAdminVaAlInicio(t *testing.T) {
	d := guard.Evaluar(session.EstadoResuelta, sesionCliente(), guard.VistaAdmin)
	assert.Equal(t, guard.AccionRedirigir, d.Accion)
	assert.Equal(t, guard.RutaInicio, d.Destino)
	assert.False(t, d.GuardarRuta)
}
