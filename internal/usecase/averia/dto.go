package averia

import (
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/optional"
	"github.com/irds/vans-api/internal/repository"
)

// CreateAveriaRequest - petición de alta de avería
type CreateAveriaRequest struct {
	VanID              int64   `json:"van_id" validate:"required"`
	Causa              string  `json:"causa" validate:"required,max=1000"`
	FechaAveria        string  `json:"fecha_averia" validate:"required"`
	Taller             *string `json:"taller,omitempty"`
	FechaEntradaTaller *string `json:"fecha_entrada_taller,omitempty"`
	EstimacionSalida   *string `json:"estimacion_salida,omitempty"`
	FechaSalidaTaller  *string `json:"fecha_salida_taller,omitempty"`
	Observaciones      *string `json:"observaciones,omitempty"`
}

// ToDomain valida la petición y la convierte en la entidad
func (r *CreateAveriaRequest) ToDomain() (*domain.Averia, error) {
	fechaAveria, err := domain.ParseDate(r.FechaAveria)
	if err != nil {
		return nil, err
	}

	averia := &domain.Averia{
		VanID:         r.VanID,
		Causa:         r.Causa,
		FechaAveria:   fechaAveria,
		Taller:        r.Taller,
		Observaciones: r.Observaciones,
	}

	if averia.FechaEntradaTaller, err = parseOptionalDate(r.FechaEntradaTaller); err != nil {
		return nil, err
	}
	if averia.EstimacionSalida, err = parseOptionalDate(r.EstimacionSalida); err != nil {
		return nil, err
	}
	if averia.FechaSalidaTaller, err = parseOptionalDate(r.FechaSalidaTaller); err != nil {
		return nil, err
	}

	if err := averia.Validate(); err != nil {
		return nil, err
	}

	return averia, nil
}

// UpdateAveriaRequest - parche parcial de avería
// No incluye van_id: una avería no se mueve de furgoneta.
// En los campos anulables un null explícito vacía la columna;
// poner fecha_salida_taller a null reabre la avería
type UpdateAveriaRequest struct {
	Causa              *string                   `json:"causa"`
	FechaAveria        *string                   `json:"fecha_averia"`
	Taller             optional.Optional[string] `json:"taller"`
	FechaEntradaTaller optional.Optional[string] `json:"fecha_entrada_taller"`
	EstimacionSalida   optional.Optional[string] `json:"estimacion_salida"`
	FechaSalidaTaller  optional.Optional[string] `json:"fecha_salida_taller"`
	Observaciones      optional.Optional[string] `json:"observaciones"`
}

// ToPatch valida los campos presentes y construye el parche de almacén
func (r *UpdateAveriaRequest) ToPatch() (*repository.AveriaPatch, error) {
	patch := &repository.AveriaPatch{
		Observaciones: r.Observaciones,
	}

	if r.Causa != nil {
		if *r.Causa == "" || len(*r.Causa) > 1000 {
			return nil, domain.ErrInvalidCausa
		}
		patch.Causa = r.Causa
	}
	if r.Taller.Present {
		if r.Taller.Value != nil && len(*r.Taller.Value) > 100 {
			return nil, domain.ErrInvalidAveriaData
		}
		patch.Taller = r.Taller
	}

	var err error
	if patch.FechaAveria, err = parseOptionalDate(r.FechaAveria); err != nil {
		return nil, err
	}
	if patch.FechaEntradaTaller, err = parseNullableDate(r.FechaEntradaTaller); err != nil {
		return nil, err
	}
	if patch.EstimacionSalida, err = parseNullableDate(r.EstimacionSalida); err != nil {
		return nil, err
	}
	if patch.FechaSalidaTaller, err = parseNullableDate(r.FechaSalidaTaller); err != nil {
		return nil, err
	}

	return patch, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := domain.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseNullableDate conserva el estado de presencia del campo:
// ausente no toca, null vacía, valor se parsea
func parseNullableDate(value optional.Optional[string]) (optional.Optional[time.Time], error) {
	if !value.Present {
		return optional.Optional[time.Time]{}, nil
	}
	if value.Value == nil {
		return optional.Null[time.Time](), nil
	}
	t, err := domain.ParseDate(*value.Value)
	if err != nil {
		return optional.Optional[time.Time]{}, err
	}
	return optional.Some(t), nil
}
