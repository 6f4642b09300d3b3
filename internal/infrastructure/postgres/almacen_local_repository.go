package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/TiendaEmpeno-bff/internal/domain/repository"
)

var _ repository.AlmacenLocal = (*AlmacenLocalRepo)(nil)

// AlmacenLocalRepo implementación de AlmacenLocal sobre la tabla almacen_local.
// Una fila por (contexto, clave); las escrituras son upserts y gana la última.
type AlmacenLocalRepo struct {
	pool *pgxpool.Pool
}

// NewAlmacenLocalRepository construye el adaptador con el pool.
func NewAlmacenLocalRepository(pool *pgxpool.Pool) *AlmacenLocalRepo {
	return &AlmacenLocalRepo{pool: pool}
}

// Obtener devuelve el valor de la clave; cadena vacía si no existe.
func (r *AlmacenLocalRepo) Obtener(ctx context.Context, contexto, clave string) (string, error) {
	query := `SELECT valor FROM almacen_local WHERE contexto = $1 AND clave = $2`
	var valor string
	err := r.pool.QueryRow(ctx, query, contexto, clave).Scan(&valor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("obtener %s: %w", clave, err)
	}
	return valor, nil
}

// Guardar escribe el valor (upsert).
func (r *AlmacenLocalRepo) Guardar(ctx context.Context, contexto, clave, valor string) error {
	query := `
		INSERT INTO almacen_local (contexto, clave, valor, actualizado_en)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (contexto, clave) DO UPDATE SET valor = EXCLUDED.valor, actualizado_en = now()`
	if _, err := r.pool.Exec(ctx, query, contexto, clave, valor); err != nil {
		return fmt.Errorf("guardar %s: %w", clave, err)
	}
	return nil
}

// Eliminar borra la clave; no es error que no exista.
func (r *AlmacenLocalRepo) Eliminar(ctx context.Context, contexto, clave string) error {
	query := `DELETE FROM almacen_local WHERE contexto = $1 AND clave = $2`
	if _, err := r.pool.Exec(ctx, query, contexto, clave); err != nil {
		return fmt.Errorf("eliminar %s: %w", clave, err)
	}
	return nil
}
