package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	type payload struct {
		Nombre Optional[string] `json:"nombre"`
		Numero Optional[int]    `json:"numero"`
	}

	t.Run("campo ausente", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Nombre.Present)
		assert.False(t, p.Nombre.IsNull())
	})

	t.Run("null explícito", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"nombre": null}`), &p))
		assert.True(t, p.Nombre.Present)
		assert.True(t, p.Nombre.IsNull())
		assert.Nil(t, p.Nombre.Value)
	})

	t.Run("valor presente", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"nombre": "taller norte", "numero": 7}`), &p))
		assert.True(t, p.Nombre.Present)
		assert.False(t, p.Nombre.IsNull())
		assert.Equal(t, "taller norte", *p.Nombre.Value)
		assert.Equal(t, 7, *p.Numero.Value)
	})

	t.Run("valor de tipo incorrecto", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"numero": "siete"}`), &p))
	})
}

func TestConstructors(t *testing.T) {
	s := Some("x")
	assert.True(t, s.Present)
	assert.Equal(t, "x", *s.Value)

	n := Null[string]()
	assert.True(t, n.IsNull())
}

func TestMarshal(t *testing.T) {
	b, err := json.Marshal(Some(3))
	assert.NoError(t, err)
	assert.Equal(t, "3", string(b))

	b, err = json.Marshal(Null[int]())
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
