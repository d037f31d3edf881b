package repository

import (
	"time"

	"github.com/irds/vans-api/internal/pkg/optional"
)

// Parches parciales. Los campos obligatorios usan punteros (nil = no
// tocar); los anulables usan optional.Optional para distinguir además
// el null explícito, que pone la columna a NULL.

// VanPatch - parche parcial de una furgoneta
type VanPatch struct {
	Activa           *bool
	VIN              *string
	Modelo           *string
	Matricula        *string
	NumPoliza        optional.Optional[string]
	Tipo             *string
	Empresa          *string
	NumLlave         optional.Optional[int]
	Estado           *string
	EstadoITV        *bool
	FechaITV         optional.Optional[time.Time]
	Averia           *bool
	FechaActivacion  optional.Optional[time.Time]
	FechaDefleeting  optional.Optional[time.Time]
	FechaFinContrato optional.Optional[time.Time]
	Observaciones    optional.Optional[string]
}

// IsEmpty indica si el parche no cambia nada
func (p *VanPatch) IsEmpty() bool {
	return p.Activa == nil && p.VIN == nil && p.Modelo == nil && p.Matricula == nil &&
		!p.NumPoliza.Present && p.Tipo == nil && p.Empresa == nil && !p.NumLlave.Present &&
		p.Estado == nil && p.EstadoITV == nil && !p.FechaITV.Present && p.Averia == nil &&
		!p.FechaActivacion.Present && !p.FechaDefleeting.Present &&
		!p.FechaFinContrato.Present && !p.Observaciones.Present
}

// AveriaPatch - parche parcial de una avería (nunca toca van_id)
type AveriaPatch struct {
	Causa              *string
	FechaAveria        *time.Time
	Taller             optional.Optional[string]
	FechaEntradaTaller optional.Optional[time.Time]
	EstimacionSalida   optional.Optional[time.Time]
	FechaSalidaTaller  optional.Optional[time.Time]
	Observaciones      optional.Optional[string]
}

// IsEmpty indica si el parche no cambia nada
func (p *AveriaPatch) IsEmpty() bool {
	return p.Causa == nil && p.FechaAveria == nil && !p.Taller.Present &&
		!p.FechaEntradaTaller.Present && !p.EstimacionSalida.Present &&
		!p.FechaSalidaTaller.Present && !p.Observaciones.Present
}
