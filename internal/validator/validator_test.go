package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,password-strength"`
	Availability string   `json:"availability" binding:"omitempty,availability"`
	PriceRange   string   `json:"price_range" binding:"omitempty,price-range"`
	Barrios      []uint   `json:"barrios" binding:"omitempty,min=1,max=5"`
	Name         string   `json:"name" binding:"omitempty,min=2,max=50"`
	Certs        []string `json:"certs" binding:"omitempty,max=3"`
}

func TestValidate_SpanishMessages(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&sampleForm{
		Email:    "no-es-un-email",
		Password: "corta",
		Name:     "x",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Имена полей берутся из json-тегов
	assert.Equal(t, "Email inválido", vErr.Errors["email"])
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres, una mayúscula y un número", vErr.Errors["password"])
	assert.Equal(t, "Debe tener al menos 2 caracteres", vErr.Errors["name"])
}

func TestValidate_RequiredFields(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&sampleForm{})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Este campo es obligatorio", vErr.Errors["email"])
	assert.Equal(t, "Este campo es obligatorio", vErr.Errors["password"])
}

func TestValidate_CustomRules(t *testing.T) {
	t.Parallel()

	v := New()

	valid := &sampleForm{
		Email:        "juan@test.com",
		Password:     "Password1",
		Availability: "available",
		PriceRange:   "medium",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := &sampleForm{
		Email:        "juan@test.com",
		Password:     "Password1",
		Availability: "maybe",
		PriceRange:   "gratis",
	}
	err := v.Validate(invalid)
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Valor no permitido", vErr.Errors["availability"])
	assert.Equal(t, "Valor no permitido", vErr.Errors["price_range"])
}

func TestValidate_SliceBounds(t *testing.T) {
	t.Parallel()

	v := New()

	tooMany := &sampleForm{
		Email:    "juan@test.com",
		Password: "Password1",
		Barrios:  []uint{1, 2, 3, 4, 5, 6},
	}
	err := v.Validate(tooMany)
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Máximo 5", vErr.Errors["barrios"])
}
