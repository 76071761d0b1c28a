package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRedirectPath(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/mi-perfil":                 "/mi-perfil",
		"/buscar?categoria=plomeria": "/buscar?categoria=plomeria",
		"/":                          "/",

		// Всё подозрительное схлопывается на главную.
		"":                          "/",
		"mi-perfil":                 "/",
		"https://evil.com":          "/",
		"//evil.com":                "/",
		"/path:with:colon":          "/",
		"/foo?next=javascript:x":    "/",
		"javascript:alert(1)":       "/",
	}

	for in, want := range cases {
		assert.Equal(t, want, SafeRedirectPath(in), "input %q", in)
	}
}
