package dto

// LoginRequest credenciales que la SPA envía al iniciar sesión.
type LoginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// SesionResponse vista de la sesión del contexto actual.
type SesionResponse struct {
	Autenticada bool   `json:"autenticada"`
	IDUsuario   string `json:"idUsuario,omitempty"`
	TipoUsuario string `json:"tipoUsuario,omitempty"`
	Email       string `json:"email,omitempty"`
}

// LoginResponse respuesta del login: sesión resultante y, si existía una
// redirección pendiente, la ruta a la que volver.
type LoginResponse struct {
	Sesion      SesionResponse `json:"sesion"`
	Redireccion string         `json:"redireccion,omitempty"`
}

// RegistroRequest datos de registro de un cliente nuevo (se reenvían al backend).
type RegistroRequest struct {
	Nombre          string `json:"nombre"`
	Correo          string `json:"correo"`
	Password        string `json:"password"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	Telefono        string `json:"telefono"`
}
