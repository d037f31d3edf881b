package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const averiaColumns = `id, van_id, causa, fecha_averia, taller, fecha_entrada_taller,
		estimacion_salida, fecha_salida_taller, observaciones, created_at, updated_at`

type averiaRepository struct {
	db *pgxpool.Pool
}

func NewAveriaRepository(db *pgxpool.Pool) repository.AveriaRepository {
	return &averiaRepository{db: db}
}

func scanAveria(row pgx.Row) (*domain.Averia, error) {
	averia := &domain.Averia{}
	err := row.Scan(
		&averia.ID,
		&averia.VanID,
		&averia.Causa,
		&averia.FechaAveria,
		&averia.Taller,
		&averia.FechaEntradaTaller,
		&averia.EstimacionSalida,
		&averia.FechaSalidaTaller,
		&averia.Observaciones,
		&averia.CreatedAt,
		&averia.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return averia, nil
}

func (r *averiaRepository) queryAverias(ctx context.Context, query string, args ...interface{}) ([]*domain.Averia, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var averias []*domain.Averia
	for rows.Next() {
		averia, err := scanAveria(rows)
		if err != nil {
			return nil, err
		}
		averias = append(averias, averia)
	}

	return averias, rows.Err()
}

func (r *averiaRepository) List(ctx context.Context) ([]*domain.Averia, error) {
	query := `
		SELECT ` + averiaColumns + `
		FROM averias
		ORDER BY created_at DESC
	`
	return r.queryAverias(ctx, query)
}

func (r *averiaRepository) GetByID(ctx context.Context, id int64) (*domain.Averia, error) {
	query := `
		SELECT ` + averiaColumns + `
		FROM averias
		WHERE id = $1
	`

	averia, err := scanAveria(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAveriaNotFound
		}
		return nil, err
	}

	return averia, nil
}

func (r *averiaRepository) GetByVanID(ctx context.Context, vanID int64) ([]*domain.Averia, error) {
	query := `
		SELECT ` + averiaColumns + `
		FROM averias
		WHERE van_id = $1
		ORDER BY created_at DESC
	`
	return r.queryAverias(ctx, query, vanID)
}

func (r *averiaRepository) Create(ctx context.Context, averia *domain.Averia) error {
	query := `
		INSERT INTO averias (van_id, causa, fecha_averia, taller, fecha_entrada_taller,
			estimacion_salida, fecha_salida_taller, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	averia.CreatedAt = time.Now()
	averia.UpdatedAt = averia.CreatedAt

	err := r.db.QueryRow(ctx, query,
		averia.VanID,
		averia.Causa,
		averia.FechaAveria,
		averia.Taller,
		averia.FechaEntradaTaller,
		averia.EstimacionSalida,
		averia.FechaSalidaTaller,
		averia.Observaciones,
		averia.CreatedAt,
		averia.UpdatedAt,
	).Scan(&averia.ID)

	if err != nil {
		// Red de seguridad frente a la carrera comprobar-e-insertar:
		// si la furgoneta desapareció entre medias, salta la FK
		if isForeignKeyViolation(err) {
			return domain.ErrVanNotFound
		}
		return err
	}

	return nil
}

func (r *averiaRepository) Update(ctx context.Context, id int64, patch *repository.AveriaPatch) error {
	set := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now()}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Causa != nil {
		addSet("causa", *patch.Causa)
	}
	if patch.FechaAveria != nil {
		addSet("fecha_averia", *patch.FechaAveria)
	}
	// Campos anulables: un Value a nil escribe NULL
	// (vaciar fecha_salida_taller reabre la avería)
	if patch.Taller.Present {
		addSet("taller", patch.Taller.Value)
	}
	if patch.FechaEntradaTaller.Present {
		addSet("fecha_entrada_taller", patch.FechaEntradaTaller.Value)
	}
	if patch.EstimacionSalida.Present {
		addSet("estimacion_salida", patch.EstimacionSalida.Value)
	}
	if patch.FechaSalidaTaller.Present {
		addSet("fecha_salida_taller", patch.FechaSalidaTaller.Value)
	}
	if patch.Observaciones.Present {
		addSet("observaciones", patch.Observaciones.Value)
	}

	query := fmt.Sprintf("UPDATE averias SET %s WHERE id = $1", strings.Join(set, ", "))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAveriaNotFound
	}

	return nil
}

func (r *averiaRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM averias WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAveriaNotFound
	}

	return nil
}
