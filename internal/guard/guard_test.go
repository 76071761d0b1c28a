package guard

import (
	"testing"

	"rapifix_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := map[string]RouteClass{
		"/":                        RoutePublic,
		"/buscar":                  RoutePublic,
		"/profesional/juan-perez":  RoutePublic,
		"/login":                   RouteAuth,
		"/registro":                RouteAuth,
		"/password/reset":          RouteAuth,
		"/mi-perfil":               RouteDashboard,
		"/mi-perfil/fotos":         RouteDashboard,
		"/admin":                   RouteAdmin,
		"/admin/profesionales":     RouteAdmin,
		"/favoritos":               RouteSearcher,
		"/contactos":               RouteSearcher,
		"/ruta-que-no-existe":      RoutePublic,
		"/administracion-publica":  RoutePublic,
		"/mi-perfil-publico":       RoutePublic,
		"/contactos-utiles":        RoutePublic,
		"/adminton":                RoutePublic,
	}

	for path, want := range cases {
		assert.Equal(t, want, Classify(path), "path %s", path)
	}
}

func TestDecide_Anonymous(t *testing.T) {
	t.Parallel()

	// Публичные и auth-страницы открыты.
	assert.Equal(t, ActionAllow, Decide(RoutePublic, nil, "/").Action)
	assert.Equal(t, ActionAllow, Decide(RouteAuth, nil, "/login").Action)

	// Любой закрытый раздел без сессии - на логин с возвратом.
	for _, class := range []RouteClass{RouteSearcher, RouteDashboard, RouteAdmin} {
		d := Decide(class, nil, "/mi-perfil/fotos")
		assert.Equal(t, ActionRedirectLogin, d.Action)
		assert.Equal(t, "/login?redirect=/mi-perfil/fotos", d.Target)
	}
}

func TestDecide_Searcher(t *testing.T) {
	t.Parallel()

	s := &Session{UserID: "u1", Role: models.UserRoleSearcher}

	assert.Equal(t, ActionAllow, Decide(RoutePublic, s, "/").Action)
	assert.Equal(t, ActionAllow, Decide(RouteSearcher, s, "/favoritos").Action)

	// Искатель в кабинете профессионала - на главную, не на логин.
	d := Decide(RouteDashboard, s, "/mi-perfil")
	assert.Equal(t, ActionRedirectHome, d.Action)
	assert.Equal(t, "/", d.Target)

	d = Decide(RouteAdmin, s, "/admin")
	assert.Equal(t, ActionRedirectHome, d.Action)

	// Залогиненный на /login уходит на свою домашнюю страницу.
	d = Decide(RouteAuth, s, "/login")
	assert.Equal(t, ActionRedirectRoleHome, d.Action)
	assert.Equal(t, "/", d.Target)
}

func TestDecide_Professional(t *testing.T) {
	t.Parallel()

	s := &Session{UserID: "u2", Role: models.UserRoleProfessional}

	assert.Equal(t, ActionAllow, Decide(RouteDashboard, s, "/mi-perfil").Action)

	d := Decide(RouteAdmin, s, "/admin")
	assert.Equal(t, ActionRedirectHome, d.Action)

	d = Decide(RouteAuth, s, "/registro")
	assert.Equal(t, ActionRedirectRoleHome, d.Action)
	assert.Equal(t, "/mi-perfil", d.Target)
}

func TestDecide_Admin(t *testing.T) {
	t.Parallel()

	s := &Session{UserID: "u3", Role: models.UserRoleAdmin}

	assert.Equal(t, ActionAllow, Decide(RouteAdmin, s, "/admin").Action)
	// Админ имеет доступ и к кабинету профессионала.
	assert.Equal(t, ActionAllow, Decide(RouteDashboard, s, "/mi-perfil").Action)

	d := Decide(RouteAuth, s, "/login")
	assert.Equal(t, ActionRedirectRoleHome, d.Action)
	assert.Equal(t, "/", d.Target)
}

func TestDecide_UnknownRoleFailsClosed(t *testing.T) {
	t.Parallel()

	s := &Session{UserID: "u4", Role: models.UserRole("moderator")}

	d := Decide(RouteAdmin, s, "/admin")
	assert.Equal(t, ActionRedirectHome, d.Action)

	d = Decide(RouteDashboard, s, "/mi-perfil")
	assert.Equal(t, ActionRedirectHome, d.Action)
}
