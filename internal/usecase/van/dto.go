package van

import (
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/optional"
	"github.com/irds/vans-api/internal/repository"
)

// CreateVanRequest - petición de alta de furgoneta
// Las fechas viajan como cadenas "YYYY-MM-DD"
type CreateVanRequest struct {
	Activa           *bool   `json:"activa,omitempty"`
	VIN              string  `json:"vin" validate:"required,len=17"`
	Modelo           string  `json:"modelo" validate:"required"`
	Matricula        string  `json:"matricula" validate:"required"`
	NumPoliza        *string `json:"num_poliza,omitempty"`
	Tipo             string  `json:"tipo" validate:"required"`
	Empresa          string  `json:"empresa" validate:"required"`
	NumLlave         *int    `json:"num_llave,omitempty"`
	Estado           string  `json:"estado" validate:"required"`
	EstadoITV        *bool   `json:"estado_itv,omitempty"`
	FechaITV         *string `json:"fecha_itv,omitempty"`
	Averia           *bool   `json:"averia,omitempty"`
	FechaActivacion  *string `json:"fecha_activacion,omitempty"`
	FechaDefleeting  *string `json:"fecha_defleeting,omitempty"`
	FechaFinContrato *string `json:"fecha_fin_contrato,omitempty"`
	Observaciones    *string `json:"observaciones,omitempty"`
}

// ToDomain valida la petición y la convierte en la entidad
// Flags ausentes: activa=true, estado_itv=true, averia=false
func (r *CreateVanRequest) ToDomain() (*domain.Van, error) {
	van := &domain.Van{
		Activa:        true,
		VIN:           r.VIN,
		Modelo:        r.Modelo,
		Matricula:     r.Matricula,
		NumPoliza:     r.NumPoliza,
		Tipo:          r.Tipo,
		Empresa:       r.Empresa,
		NumLlave:      r.NumLlave,
		Estado:        r.Estado,
		EstadoITV:     true,
		Averia:        false,
		Observaciones: r.Observaciones,
	}

	if r.Activa != nil {
		van.Activa = *r.Activa
	}
	if r.EstadoITV != nil {
		van.EstadoITV = *r.EstadoITV
	}
	if r.Averia != nil {
		van.Averia = *r.Averia
	}

	var err error
	if van.FechaITV, err = parseOptionalDate(r.FechaITV); err != nil {
		return nil, err
	}
	if van.FechaActivacion, err = parseOptionalDate(r.FechaActivacion); err != nil {
		return nil, err
	}
	if van.FechaDefleeting, err = parseOptionalDate(r.FechaDefleeting); err != nil {
		return nil, err
	}
	if van.FechaFinContrato, err = parseOptionalDate(r.FechaFinContrato); err != nil {
		return nil, err
	}

	if err := van.Validate(); err != nil {
		return nil, err
	}

	return van, nil
}

// UpdateVanRequest - parche parcial de furgoneta
// Solo se escriben los campos presentes; en los anulables un null
// explícito vacía la columna
type UpdateVanRequest struct {
	Activa           *bool                     `json:"activa"`
	VIN              *string                   `json:"vin"`
	Modelo           *string                   `json:"modelo"`
	Matricula        *string                   `json:"matricula"`
	NumPoliza        optional.Optional[string] `json:"num_poliza"`
	Tipo             *string                   `json:"tipo"`
	Empresa          *string                   `json:"empresa"`
	NumLlave         optional.Optional[int]    `json:"num_llave"`
	Estado           *string                   `json:"estado"`
	EstadoITV        *bool                     `json:"estado_itv"`
	FechaITV         optional.Optional[string] `json:"fecha_itv"`
	Averia           *bool                     `json:"averia"`
	FechaActivacion  optional.Optional[string] `json:"fecha_activacion"`
	FechaDefleeting  optional.Optional[string] `json:"fecha_defleeting"`
	FechaFinContrato optional.Optional[string] `json:"fecha_fin_contrato"`
	Observaciones    optional.Optional[string] `json:"observaciones"`
}

// ToPatch valida los campos presentes y construye el parche de almacén
func (r *UpdateVanRequest) ToPatch() (*repository.VanPatch, error) {
	patch := &repository.VanPatch{
		Activa:        r.Activa,
		NumPoliza:     r.NumPoliza,
		NumLlave:      r.NumLlave,
		EstadoITV:     r.EstadoITV,
		Averia:        r.Averia,
		Observaciones: r.Observaciones,
	}

	if r.VIN != nil {
		vin := domain.NormalizeVIN(*r.VIN)
		if len(vin) != domain.VINLength {
			return nil, domain.ErrInvalidVIN
		}
		patch.VIN = &vin
	}
	if r.Matricula != nil {
		matricula := domain.NormalizeMatricula(*r.Matricula)
		if matricula == "" || len(matricula) > 20 {
			return nil, domain.ErrInvalidMatricula
		}
		patch.Matricula = &matricula
	}
	if r.Modelo != nil {
		if *r.Modelo == "" || len(*r.Modelo) > 100 {
			return nil, domain.ErrInvalidVanData
		}
		patch.Modelo = r.Modelo
	}
	if r.Tipo != nil {
		if *r.Tipo == "" || len(*r.Tipo) > 50 {
			return nil, domain.ErrInvalidVanData
		}
		patch.Tipo = r.Tipo
	}
	if r.Empresa != nil {
		if *r.Empresa == "" || len(*r.Empresa) > 100 {
			return nil, domain.ErrInvalidVanData
		}
		patch.Empresa = r.Empresa
	}
	if r.Estado != nil {
		if *r.Estado == "" || len(*r.Estado) > 50 {
			return nil, domain.ErrInvalidVanData
		}
		patch.Estado = r.Estado
	}

	var err error
	if patch.FechaITV, err = parseNullableDate(r.FechaITV); err != nil {
		return nil, err
	}
	if patch.FechaActivacion, err = parseNullableDate(r.FechaActivacion); err != nil {
		return nil, err
	}
	if patch.FechaDefleeting, err = parseNullableDate(r.FechaDefleeting); err != nil {
		return nil, err
	}
	if patch.FechaFinContrato, err = parseNullableDate(r.FechaFinContrato); err != nil {
		return nil, err
	}

	return patch, nil
}

// parseOptionalDate convierte una fecha opcional "YYYY-MM-DD"
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

// parseNullableDate convierte una fecha anulable conservando el
// estado de presencia (un null explícito vacía la columna)
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
