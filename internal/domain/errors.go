package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoAutenticado       = errors.New("sesión no autenticada")
	ErrSesionExpirada      = errors.New("sesión expirada o rechazada por el servidor")
	ErrNoEncontrado        = errors.New("recurso no encontrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrProhibido           = errors.New("acceso denegado")
	ErrBackendNoDisponible = errors.New("no se pudo contactar al servidor")
)
