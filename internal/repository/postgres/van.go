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

const vanColumns = `id, activa, vin, modelo, matricula, num_poliza, tipo, empresa,
		num_llave, estado, estado_itv, fecha_itv, averia, fecha_activacion,
		fecha_defleeting, fecha_fin_contrato, observaciones, created_at, updated_at`

type vanRepository struct {
	db *pgxpool.Pool
}

func NewVanRepository(db *pgxpool.Pool) repository.VanRepository {
	return &vanRepository{db: db}
}

func scanVan(row pgx.Row) (*domain.Van, error) {
	van := &domain.Van{}
	err := row.Scan(
		&van.ID,
		&van.Activa,
		&van.VIN,
		&van.Modelo,
		&van.Matricula,
		&van.NumPoliza,
		&van.Tipo,
		&van.Empresa,
		&van.NumLlave,
		&van.Estado,
		&van.EstadoITV,
		&van.FechaITV,
		&van.Averia,
		&van.FechaActivacion,
		&van.FechaDefleeting,
		&van.FechaFinContrato,
		&van.Observaciones,
		&van.CreatedAt,
		&van.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return van, nil
}

func (r *vanRepository) queryVans(ctx context.Context, query string, args ...interface{}) ([]*domain.Van, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vans []*domain.Van
	for rows.Next() {
		van, err := scanVan(rows)
		if err != nil {
			return nil, err
		}
		vans = append(vans, van)
	}

	return vans, rows.Err()
}

func (r *vanRepository) List(ctx context.Context) ([]*domain.Van, error) {
	query := `
		SELECT ` + vanColumns + `
		FROM vans
		ORDER BY created_at DESC
	`
	return r.queryVans(ctx, query)
}

func (r *vanRepository) GetByID(ctx context.Context, id int64) (*domain.Van, error) {
	query := `
		SELECT ` + vanColumns + `
		FROM vans
		WHERE id = $1
	`

	van, err := scanVan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVanNotFound
		}
		return nil, err
	}

	return van, nil
}

func (r *vanRepository) SearchByMatricula(ctx context.Context, query string) ([]*domain.Van, error) {
	sql := `
		SELECT ` + vanColumns + `
		FROM vans
		WHERE matricula ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	return r.queryVans(ctx, sql, query)
}

func (r *vanRepository) Filter(ctx context.Context, filter *domain.VanFilter) ([]*domain.Van, error) {
	var conditions []string
	var args []interface{}

	addCondition := func(column string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Empresa != nil {
		addCondition("empresa", *filter.Empresa)
	}
	if filter.Estado != nil {
		addCondition("estado", *filter.Estado)
	}
	if filter.Activa != nil {
		addCondition("activa", *filter.Activa)
	}
	if filter.Averia != nil {
		addCondition("averia", *filter.Averia)
	}
	if filter.EstadoITV != nil {
		addCondition("estado_itv", *filter.EstadoITV)
	}

	sql := `SELECT ` + vanColumns + ` FROM vans`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	return r.queryVans(ctx, sql, args...)
}

func (r *vanRepository) Create(ctx context.Context, van *domain.Van) error {
	query := `
		INSERT INTO vans (activa, vin, modelo, matricula, num_poliza, tipo, empresa,
			num_llave, estado, estado_itv, fecha_itv, averia, fecha_activacion,
			fecha_defleeting, fecha_fin_contrato, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	van.CreatedAt = time.Now()
	van.UpdatedAt = van.CreatedAt

	// Normalizamos las claves naturales antes de guardar
	van.VIN = domain.NormalizeVIN(van.VIN)
	van.Matricula = domain.NormalizeMatricula(van.Matricula)

	err := r.db.QueryRow(ctx, query,
		van.Activa,
		van.VIN,
		van.Modelo,
		van.Matricula,
		van.NumPoliza,
		van.Tipo,
		van.Empresa,
		van.NumLlave,
		van.Estado,
		van.EstadoITV,
		van.FechaITV,
		van.Averia,
		van.FechaActivacion,
		van.FechaDefleeting,
		van.FechaFinContrato,
		van.Observaciones,
		van.CreatedAt,
		van.UpdatedAt,
	).Scan(&van.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVanAlreadyExists
		}
		return err
	}

	return nil
}

func (r *vanRepository) Update(ctx context.Context, id int64, patch *repository.VanPatch) error {
	set := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now()}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Activa != nil {
		addSet("activa", *patch.Activa)
	}
	if patch.VIN != nil {
		addSet("vin", domain.NormalizeVIN(*patch.VIN))
	}
	if patch.Modelo != nil {
		addSet("modelo", *patch.Modelo)
	}
	if patch.Matricula != nil {
		addSet("matricula", domain.NormalizeMatricula(*patch.Matricula))
	}
	// Campos anulables: un Value a nil escribe NULL
	if patch.NumPoliza.Present {
		addSet("num_poliza", patch.NumPoliza.Value)
	}
	if patch.Tipo != nil {
		addSet("tipo", *patch.Tipo)
	}
	if patch.Empresa != nil {
		addSet("empresa", *patch.Empresa)
	}
	if patch.NumLlave.Present {
		addSet("num_llave", patch.NumLlave.Value)
	}
	if patch.Estado != nil {
		addSet("estado", *patch.Estado)
	}
	if patch.EstadoITV != nil {
		addSet("estado_itv", *patch.EstadoITV)
	}
	if patch.FechaITV.Present {
		addSet("fecha_itv", patch.FechaITV.Value)
	}
	if patch.Averia != nil {
		addSet("averia", *patch.Averia)
	}
	if patch.FechaActivacion.Present {
		addSet("fecha_activacion", patch.FechaActivacion.Value)
	}
	if patch.FechaDefleeting.Present {
		addSet("fecha_defleeting", patch.FechaDefleeting.Value)
	}
	if patch.FechaFinContrato.Present {
		addSet("fecha_fin_contrato", patch.FechaFinContrato.Value)
	}
	if patch.Observaciones.Present {
		addSet("observaciones", patch.Observaciones.Value)
	}

	query := fmt.Sprintf("UPDATE vans SET %s WHERE id = $1", strings.Join(set, ", "))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVanAlreadyExists
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVanNotFound
	}

	return nil
}

func (r *vanRepository) Delete(ctx context.Context, id int64) error {
	// Borrado real; las averías caen por el ON DELETE CASCADE del esquema
	query := `DELETE FROM vans WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVanNotFound
	}

	return nil
}
