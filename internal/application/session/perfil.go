package session

import (
	"context"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/entity"
	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
)

// GuardarPerfil cachea los datos de perfil en el almacén local, una clave por
// campo, para que el checkout los lea de forma oportunista.
func (uc *SesionUseCase) GuardarPerfil(ctx context.Context, contexto string, p entity.PerfilCliente) {
	uc.escribir(ctx, contexto, repository.ClaveNombre, p.Nombre)
	uc.escribir(ctx, contexto, repository.ClaveTelefono, p.Telefono)
	uc.escribir(ctx, contexto, repository.ClaveDireccion, p.Direccion)
	uc.escribir(ctx, contexto, repository.ClaveCiudad, p.Ciudad)
	uc.escribir(ctx, contexto, repository.ClaveDepartamento, p.Departamento)
	uc.escribir(ctx, contexto, repository.ClaveCodigoPostal, p.CodigoPostal)
}

// LeerPerfil lee el caché de perfil; los campos ausentes quedan vacíos.
func (uc *SesionUseCase) LeerPerfil(ctx context.Context, contexto string) entity.PerfilCliente {
	return entity.PerfilCliente{
		Nombre:       uc.leer(ctx, contexto, repository.ClaveNombre),
		Telefono:     uc.leer(ctx, contexto, repository.ClaveTelefono),
		Direccion:    uc.leer(ctx, contexto, repository.ClaveDireccion),
		Ciudad:       uc.leer(ctx, contexto, repository.ClaveCiudad),
		Departamento: uc.leer(ctx, contexto, repository.ClaveDepartamento),
		CodigoPostal: uc.leer(ctx, contexto, repository.ClaveCodigoPostal),
	}
}
