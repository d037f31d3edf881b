package domain

import (
	"strings"
	"time"
)

// VINLength - longitud exacta de un VIN según la norma ISO 3779
const VINLength = 17

// Van - furgoneta de la flota
// VIN y MATRICULA son claves naturales únicas a nivel global
type Van struct {
	ID               int64      `json:"id"`
	Activa           bool       `json:"activa"`
	VIN              string     `json:"vin"`       // Bastidor (único, 17 caracteres)
	Modelo           string     `json:"modelo"`
	Matricula        string     `json:"matricula"` // Matrícula (única)
	NumPoliza        *string    `json:"num_poliza,omitempty"`
	Tipo             string     `json:"tipo"`
	Empresa          string     `json:"empresa"`
	NumLlave         *int       `json:"num_llave,omitempty"`
	Estado           string     `json:"estado"`
	EstadoITV        bool       `json:"estado_itv"`
	FechaITV         *time.Time `json:"fecha_itv,omitempty"`
	Averia           bool       `json:"averia"`
	FechaActivacion  *time.Time `json:"fecha_activacion,omitempty"`
	FechaDefleeting  *time.Time `json:"fecha_defleeting,omitempty"`
	FechaFinContrato *time.Time `json:"fecha_fin_contrato,omitempty"`
	Observaciones    *string    `json:"observaciones,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// NormalizeVIN normaliza el bastidor (quita espacios, pasa a mayúsculas)
func NormalizeVIN(vin string) string {
	return strings.ToUpper(strings.ReplaceAll(vin, " ", ""))
}

// NormalizeMatricula normaliza la matrícula (quita espacios, pasa a mayúsculas)
func NormalizeMatricula(matricula string) string {
	return strings.ToUpper(strings.TrimSpace(matricula))
}

// Validate comprueba la coherencia de los datos de la furgoneta
func (v *Van) Validate() error {
	v.VIN = NormalizeVIN(v.VIN)
	v.Matricula = NormalizeMatricula(v.Matricula)

	if len(v.VIN) != VINLength {
		return ErrInvalidVIN
	}
	if v.Matricula == "" || len(v.Matricula) > 20 {
		return ErrInvalidMatricula
	}
	if v.Modelo == "" || len(v.Modelo) > 100 {
		return ErrInvalidVanData
	}
	if v.Tipo == "" || len(v.Tipo) > 50 {
		return ErrInvalidVanData
	}
	if v.Empresa == "" || len(v.Empresa) > 100 {
		return ErrInvalidVanData
	}
	if v.Estado == "" || len(v.Estado) > 50 {
		return ErrInvalidVanData
	}
	return nil
}

// VanFilter - predicados de igualdad sobre la flota
// Los campos a nil no restringen nada; los presentes se combinan con AND
type VanFilter struct {
	Empresa   *string `json:"empresa,omitempty"`
	Estado    *string `json:"estado,omitempty"`
	Activa    *bool   `json:"activa,omitempty"`
	Averia    *bool   `json:"averia,omitempty"`
	EstadoITV *bool   `json:"estado_itv,omitempty"`
}

// IsEmpty indica si el filtro no impone ninguna condición
func (f *VanFilter) IsEmpty() bool {
	return f.Empresa == nil && f.Estado == nil && f.Activa == nil &&
		f.Averia == nil && f.EstadoITV == nil
}
