package services

import (
	"testing"

	"rapifix_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sum   int64
		count int64
		want  float64
	}{
		{sum: 13, count: 3, want: 4.3},  // 4.333...
		{sum: 14, count: 3, want: 4.7},  // 4.666...
		{sum: 10, count: 4, want: 2.5},
		{sum: 5, count: 1, want: 5},
		{sum: 7, count: 2, want: 3.5},
		{sum: 11, count: 8, want: 1.4},  // 1.375 -> 1.4
	}

	for _, tc := range cases {
		got := RoundRating(float64(tc.sum) / float64(tc.count))
		assert.Equal(t, tc.want, got, "sum=%d count=%d", tc.sum, tc.count)
	}
}

func TestCalculateCompleteness(t *testing.T) {
	t.Parallel()

	years := 5

	minimal := &models.Profile{
		FirstName:    "Juan",
		LastName:     "Pérez",
		Phone:        "3511234567",
		Email:        "juan@example.com",
		CategoryID:   1,
		Availability: models.AvailabilityAvailable,
		PriceRange:   models.PriceRangeMedium,
	}
	// Контакты + рубрика + доступность/цены, без района и описания.
	assert.Equal(t, 45, CalculateCompleteness(minimal, 0, 0))

	full := &models.Profile{
		FirstName:       "Juan",
		LastName:        "Pérez",
		Phone:           "3511234567",
		WhatsApp:        "3511234567",
		Email:           "juan@example.com",
		CategoryID:      1,
		Description:     "Plomero matriculado con amplia experiencia en instalaciones domiciliarias y reparaciones de urgencia.",
		YearsExperience: &years,
		Availability:    models.AvailabilityAvailable,
		PriceRange:      models.PriceRangeMedium,
		ProfilePhotoURL: "/files/profiles/x/avatar.jpg",
	}
	full.SetCertifications([]string{"Matrícula municipal 1234"})

	assert.Equal(t, 100, CalculateCompleteness(full, 3, 4))

	// Короткое описание дает частичный балл.
	short := *minimal
	short.Description = "Plomero"
	assert.Equal(t, 50, CalculateCompleteness(&short, 0, 0))

	// Значение не выходит за 100.
	assert.LessOrEqual(t, CalculateCompleteness(full, 5, 20), 100)
}
