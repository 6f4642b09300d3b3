package session

import (
	"context"
	"sync"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/application/events"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/logger"
)

// Estado del proveedor de sesión para un contexto dado.
type Estado int

const (
	// EstadoCargando: aún no se ha leído el almacén local para este contexto.
	EstadoCargando Estado = iota
	// EstadoResuelta: la sesión (o su ausencia) ya se derivó del almacén.
	EstadoResuelta
)

// CambioSesion notifica a los suscriptores cada transición de sesión.
// Sesion es nil cuando la sesión se cierra o expira.
type CambioSesion struct {
	Contexto string
	Sesion   *entity.Sesion
}

// SesionUseCase es el servicio de sesión por contexto de navegador: deriva la
// vista en memoria desde el almacén local, la mantiene como única dueña y
// refleja cada mutación de vuelta al almacén.
//
// Ninguna operación falla hacia el llamador: un token inválido no se detecta
// aquí sino cuando el backend rechaza una llamada (evento SesionExpirada).
// Los errores del almacén se registran y se continúa con el estado en memoria.
type SesionUseCase struct {
	almacen repository.AlmacenLocal
	log     *logger.Logger

	mu        sync.Mutex
	sesiones  map[string]*entity.Sesion
	resueltos map[string]bool
	subs      []func(CambioSesion)
}

// NewSesionUseCase construye el servicio y lo suscribe a las expiraciones
// publicadas por la capa HTTP saliente.
func NewSesionUseCase(almacen repository.AlmacenLocal, bus *events.Bus, log *logger.Logger) *SesionUseCase {
	uc := &SesionUseCase{
		almacen:   almacen,
		log:       log,
		sesiones:  make(map[string]*entity.Sesion),
		resueltos: make(map[string]bool),
	}
	if bus != nil {
		bus.Suscribir(uc.alExpirar)
	}
	return uc
}

// Estado devuelve Cargando hasta la primera lectura del almacén para el contexto.
func (uc *SesionUseCase) Estado(contexto string) Estado {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.resueltos[contexto] {
		return EstadoResuelta
	}
	return EstadoCargando
}

// Resolver transiciona Cargando -> Resuelta leyendo las cuatro claves del
// almacén. Es idempotente: contextos ya resueltos devuelven la vista en memoria.
func (uc *SesionUseCase) Resolver(ctx context.Context, contexto string) *entity.Sesion {
	uc.mu.Lock()
	if uc.resueltos[contexto] {
		s := uc.sesiones[contexto].Clone()
		uc.mu.Unlock()
		return s
	}
	uc.mu.Unlock()

	token := uc.leer(ctx, contexto, repository.ClaveToken)
	idUsuario := uc.leer(ctx, contexto, repository.ClaveIDUsuario)
	tipo := uc.leer(ctx, contexto, repository.ClaveTipoUsuario)
	email := uc.leer(ctx, contexto, repository.ClaveEmail)

	var s *entity.Sesion
	if token != "" && idUsuario != "" {
		s = &entity.Sesion{Token: token, IDUsuario: idUsuario, TipoUsuario: tipo, Email: email}
	}

	uc.mu.Lock()
	if !uc.resueltos[contexto] {
		uc.sesiones[contexto] = s
		uc.resueltos[contexto] = true
	}
	s = uc.sesiones[contexto].Clone()
	uc.mu.Unlock()
	return s
}

// Login sobreescribe incondicionalmente los cuatro campos de sesión, en el
// almacén y en memoria. No valida la forma de los argumentos: el backend ya
// respondió un login exitoso con estos valores.
func (uc *SesionUseCase) Login(ctx context.Context, contexto, token, idUsuario, tipoUsuario, email string) {
	// Cuatro escrituras separadas: atómico por convención, no de verdad.
	uc.escribir(ctx, contexto, repository.ClaveToken, token)
	uc.escribir(ctx, contexto, repository.ClaveIDUsuario, idUsuario)
	uc.escribir(ctx, contexto, repository.ClaveTipoUsuario, tipoUsuario)
	uc.escribir(ctx, contexto, repository.ClaveEmail, email)

	s := &entity.Sesion{Token: token, IDUsuario: idUsuario, TipoUsuario: tipoUsuario, Email: email}
	uc.mu.Lock()
	uc.sesiones[contexto] = s
	uc.resueltos[contexto] = true
	uc.mu.Unlock()

	uc.notificar(CambioSesion{Contexto: contexto, Sesion: s.Clone()})
}

// Logout elimina las cuatro claves de sesión más la redirección pendiente y
// anula la vista en memoria.
func (uc *SesionUseCase) Logout(ctx context.Context, contexto string) {
	for _, clave := range []string{
		repository.ClaveToken,
		repository.ClaveIDUsuario,
		repository.ClaveTipoUsuario,
		repository.ClaveEmail,
		repository.ClaveRedireccion,
	} {
		uc.borrar(ctx, contexto, clave)
	}

	uc.mu.Lock()
	uc.sesiones[contexto] = nil
	uc.resueltos[contexto] = true
	uc.mu.Unlock()

	uc.notificar(CambioSesion{Contexto: contexto})
}

// EstaAutenticada es función pura del estado en memoria. Un contexto sin
// resolver cuenta como no autenticado.
func (uc *SesionUseCase) EstaAutenticada(contexto string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sesiones[contexto].Autenticada()
}

// Actual devuelve una copia de la sesión resuelta del contexto (nil si no hay).
func (uc *SesionUseCase) Actual(contexto string) *entity.Sesion {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sesiones[contexto].Clone()
}

// GuardarRedireccion registra la única ruta pendiente a retomar tras el login.
// Es una ayuda de UX, no una frontera de seguridad.
func (uc *SesionUseCase) GuardarRedireccion(ctx context.Context, contexto, ruta string) {
	uc.escribir(ctx, contexto, repository.ClaveRedireccion, ruta)
}

// ConsumirRedireccion lee la redirección pendiente y la elimina (lectura única).
func (uc *SesionUseCase) ConsumirRedireccion(ctx context.Context, contexto string) string {
	ruta := uc.leer(ctx, contexto, repository.ClaveRedireccion)
	if ruta != "" {
		uc.borrar(ctx, contexto, repository.ClaveRedireccion)
	}
	return ruta
}

// Suscribir registra un observador de cambios de sesión.
func (uc *SesionUseCase) Suscribir(fn func(CambioSesion)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.subs = append(uc.subs, fn)
}

// alExpirar reacciona al 401 ambiental: la capa saliente ya eliminó el token
// del almacén; aquí se anula la vista en memoria y se notifica para que el
// siguiente guard redirija al login.
func (uc *SesionUseCase) alExpirar(ev events.SesionExpirada) {
	uc.mu.Lock()
	_, habia := uc.sesiones[ev.Contexto]
	uc.sesiones[ev.Contexto] = nil
	uc.resueltos[ev.Contexto] = true
	uc.mu.Unlock()

	if habia {
		uc.log.Warn().Str("contexto", ev.Contexto).Msg("sesión expirada por 401 del backend")
	}
	uc.notificar(CambioSesion{Contexto: ev.Contexto})
}

func (uc *SesionUseCase) notificar(ev CambioSesion) {
	uc.mu.Lock()
	subs := make([]func(CambioSesion), len(uc.subs))
	copy(subs, uc.subs)
	uc.mu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

func (uc *SesionUseCase) leer(ctx context.Context, contexto, clave string) string {
	v, err := uc.almacen.Obtener(ctx, contexto, clave)
	if err != nil {
		uc.log.Warn().Err(err).Str("clave", clave).Msg("lectura del almacén local")
		return ""
	}
	return v
}

func (uc *SesionUseCase) escribir(ctx context.Context, contexto, clave, valor string) {
	if err := uc.almacen.Guardar(ctx, contexto, clave, valor); err != nil {
		uc.log.Warn().Err(err).Str("clave", clave).Msg("escritura del almacén local")
	}
}

func (uc *SesionUseCase) borrar(ctx context.Context, contexto, clave string) {
	if err := uc.almacen.Eliminar(ctx, contexto, clave); err != nil {
		uc.log.Warn().Err(err).Str("clave", clave).Msg("borrado del almacén local")
	}
}
