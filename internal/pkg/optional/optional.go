package optional

import "encoding/json"

// Optional distingue los tres estados de un campo JSON en un parche:
// ausente (no tocar), presente con valor, y null explícito (vaciar).
// Un puntero normal no puede separar "ausente" de "null", y sin esa
// distinción las columnas anulables nunca podrían volver a NULL
type Optional[T any] struct {
	Present bool
	Value   *T
}

// Some crea un Optional presente con valor
func Some[T any](value T) Optional[T] {
	return Optional[T]{Present: true, Value: &value}
}

// Null crea un Optional presente con null explícito
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// IsNull indica si el campo llegó como null explícito
func (o Optional[T]) IsNull() bool {
	return o.Present && o.Value == nil
}

// UnmarshalJSON solo se invoca si el campo aparece en el JSON,
// así que marca Present; "null" deja Value a nil
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON serializa el valor, o null si no lo hay
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
