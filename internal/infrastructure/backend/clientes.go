package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
)

// GrupoClientes llamadas de registro, login y perfil de clientes.
type GrupoClientes struct {
	c *Cliente
}

// RespuestaLogin datos de sesión que entrega el backend en un login exitoso.
type RespuestaLogin struct {
	Token       string `json:"token"`
	IDUsuario   string `json:"idUsuario"`
	TipoUsuario string `json:"tipoUsuario"`
	Email       string `json:"email"`
}

// Login autentica contra el backend; no guarda nada, eso es del servicio de sesión.
func (g *GrupoClientes) Login(ctx context.Context, contexto, correo, password string) (*RespuestaLogin, error) {
	var out RespuestaLogin
	err := g.c.hacer(ctx, contexto, http.MethodPost, "/clientes/login",
		map[string]string{"correo": correo, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Registrar crea una cuenta de cliente nueva.
func (g *GrupoClientes) Registrar(ctx context.Context, contexto string, datos any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodPost, "/clientes/registro", datos, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Perfil obtiene los datos de perfil del cliente autenticado.
func (g *GrupoClientes) Perfil(ctx context.Context, contexto string) (*entity.PerfilCliente, error) {
	var out entity.PerfilCliente
	if err := g.c.hacer(ctx, contexto, http.MethodGet, "/clientes/perfil", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActualizarPerfil guarda cambios del perfil del cliente autenticado.
func (g *GrupoClientes) ActualizarPerfil(ctx context.Context, contexto string, datos any) (json.RawMessage, error) {
	var out json.RawMessage
	if err := g.c.hacer(ctx, contexto, http.MethodPut, "/clientes/perfil", datos, &out); err != nil {
		return nil, err
	}
	return out, nil
}
