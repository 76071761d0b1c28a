package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"Juan", "Pérez", "Plomería", "Centro"}, "juan-perez-plomeria-centro"},
		{[]string{"María José", "Gómez Ñuñez"}, "maria-jose-gomez-nunez"},
		{[]string{"  Ana  ", "--López--"}, "ana-lopez"},
		{[]string{"Электрик"}, ""},
		{[]string{"Casa&Jardín", "24/7"}, "casa-jardin-24-7"},
		{[]string{""}, ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.parts...), "parts %v", tc.parts)
	}
}
