package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		password string
		want     bool
	}{
		{"Password1", true},
		{"Abcdefg1", true},
		{"A1234567", true},
		{"corta1A", false},      // менее 8 символов
		{"password1", false},    // нет заглавной
		{"PASSWORD!", false},    // нет цифры
		{"", false},
		{"12345678", false},     // только цифры
		{"Contraseña1", true},   // юникод не мешает
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidatePassword(tc.password), "password=%q", tc.password)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Password1")
	assert.NoError(t, err)
	assert.NotEqual(t, "Password1", hash)

	assert.True(t, CheckPasswordHash("Password1", hash))
	assert.False(t, CheckPasswordHash("Password2", hash))
}
