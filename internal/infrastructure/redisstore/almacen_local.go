package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
	"github.com/jhoicas/TiendaEmpeno-bff/pkg/config"
)

var _ repository.AlmacenLocal = (*AlmacenLocal)(nil)

// AlmacenLocal implementación de AlmacenLocal sobre Redis.
// Clave redis: local:{contexto}:{clave}. Sin TTL: igual que localStorage, el
// dato vive hasta que se borra o el backend rechaza el token.
type AlmacenLocal struct {
	rdb *redis.Client
}

// New conecta a Redis y verifica la conexión con un ping.
func New(ctx context.Context, cfg config.RedisConfig) (*AlmacenLocal, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("REDIS_URL vacío")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &AlmacenLocal{rdb: rdb}, nil
}

// Close cierra la conexión.
func (a *AlmacenLocal) Close() error {
	return a.rdb.Close()
}

func claveRedis(contexto, clave string) string {
	return "local:" + contexto + ":" + clave
}

// Obtener devuelve el valor de la clave; cadena vacía si no existe.
func (a *AlmacenLocal) Obtener(ctx context.Context, contexto, clave string) (string, error) {
	v, err := a.rdb.Get(ctx, claveRedis(contexto, clave)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("obtener %s: %w", clave, err)
	}
	return v, nil
}

// Guardar escribe el valor; gana la última escritura.
func (a *AlmacenLocal) Guardar(ctx context.Context, contexto, clave, valor string) error {
	if err := a.rdb.Set(ctx, claveRedis(contexto, clave), valor, 0).Err(); err != nil {
		return fmt.Errorf("guardar %s: %w", clave, err)
	}
	return nil
}

// Eliminar borra la clave; no es error que no exista.
func (a *AlmacenLocal) Eliminar(ctx context.Context, contexto, clave string) error {
	if err := a.rdb.Del(ctx, claveRedis(contexto, clave)).Err(); err != nil {
		return fmt.Errorf("eliminar %s: %w", clave, err)
	}
	return nil
}
