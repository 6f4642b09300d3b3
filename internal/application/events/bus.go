package events

import "sync"

// SesionExpirada se publica cuando cualquier llamada saliente recibe un 401
// del backend, sin importar qué página la originó. El servicio de sesión se
// suscribe y limpia el estado del contexto afectado.
type SesionExpirada struct {
	Contexto string
}

// Bus es un pub/sub en proceso para eventos de expiración de sesión.
// El despacho es síncrono: los eventos son raros y los suscriptores baratos.
type Bus struct {
	mu   sync.RWMutex
	subs []func(SesionExpirada)
}

// NewBus construye el bus.
func NewBus() *Bus {
	return &Bus{}
}

// Suscribir registra un manejador. No hay forma de darse de baja: los
// suscriptores viven lo que vive el proceso.
func (b *Bus) Suscribir(fn func(SesionExpirada)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publicar entrega el evento a todos los suscriptores en orden de registro.
func (b *Bus) Publicar(ev SesionExpirada) {
	b.mu.RLock()
	subs := make([]func(SesionExpirada), len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}
