package domain

import "time"

// Averia - registro de avería/mantenimiento de una furgoneta
// Pertenece exactamente a una Van (VanID NOT NULL, borrado en cascada)
type Averia struct {
	ID                 int64      `json:"id"`
	VanID              int64      `json:"van_id"`
	Causa              string     `json:"causa"`
	FechaAveria        time.Time  `json:"fecha_averia"`
	Taller             *string    `json:"taller,omitempty"`
	FechaEntradaTaller *time.Time `json:"fecha_entrada_taller,omitempty"`
	EstimacionSalida   *time.Time `json:"estimacion_salida,omitempty"`
	FechaSalidaTaller  *time.Time `json:"fecha_salida_taller,omitempty"`
	Observaciones      *string    `json:"observaciones,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// EnTaller indica si la avería sigue abierta
// La ausencia de fecha de salida es la señal autoritativa, no el flag de la furgoneta
func (a *Averia) EnTaller() bool {
	return a.FechaSalidaTaller == nil
}

// Validate comprueba la coherencia de los datos de la avería
func (a *Averia) Validate() error {
	if a.VanID <= 0 {
		return ErrInvalidAveriaData
	}
	if a.Causa == "" || len(a.Causa) > 1000 {
		return ErrInvalidCausa
	}
	if a.FechaAveria.IsZero() {
		return ErrInvalidFecha
	}
	if a.Taller != nil && len(*a.Taller) > 100 {
		return ErrInvalidAveriaData
	}
	return nil
}
