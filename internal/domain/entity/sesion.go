package entity

// Tipos de usuario que entrega el backend en el login.
const (
	TipoCliente       = "Cliente"
	TipoAdministrador = "Administrador"
)

// Sesion es la identidad autenticada del contexto de navegador actual.
// No guarda expiración: la validez del token se descubre de forma perezosa
// cuando el backend rechaza una llamada con 401.
type Sesion struct {
	Token       string
	IDUsuario   string
	TipoUsuario string // TipoCliente | TipoAdministrador
	Email       string
}

// Autenticada es verdadera si y solo si Token e IDUsuario están presentes.
func (s *Sesion) Autenticada() bool {
	return s != nil && s.Token != "" && s.IDUsuario != ""
}

// EsAdministrador indica si la sesión pertenece a un administrador.
func (s *Sesion) EsAdministrador() bool {
	return s.Autenticada() && s.TipoUsuario == TipoAdministrador
}

// Clone devuelve una copia profunda de la sesión (nil si s es nil).
func (s *Sesion) Clone() *Sesion {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
