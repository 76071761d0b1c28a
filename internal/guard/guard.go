package guard

import (
	"strings"

	"rapifix_backend/internal/models"
)

// RouteClass - класс маршрута с точки зрения контроля доступа.
type RouteClass int

const (
	// RoutePublic - доступен всем, сессия не требуется.
	RoutePublic RouteClass = iota
	// RouteAuth - страницы входа/регистрации, только для гостей.
	RouteAuth
	// RouteSearcher - требует любую активную сессию.
	RouteSearcher
	// RouteDashboard - кабинет профессионала.
	RouteDashboard
	// RouteAdmin - админ-панель.
	RouteAdmin
)

// Action - что делать с запросом.
type Action int

const (
	// ActionAllow - пропустить запрос дальше.
	ActionAllow Action = iota
	// ActionRedirectLogin - отправить на страницу входа,
	// сохранив исходный путь в параметре redirect.
	ActionRedirectLogin
	// ActionRedirectHome - отправить на главную.
	ActionRedirectHome
	// ActionRedirectRoleHome - отправить на "домашнюю" страницу роли:
	// профессионал попадает в свой кабинет, остальные на главную.
	ActionRedirectRoleHome
)

// Session - минимальный срез сессии, нужный для решения.
// Nil-сессия означает неаутентифицированный запрос.
type Session struct {
	UserID string
	Role   models.UserRole
}

// Decision - результат проверки доступа.
type Decision struct {
	Action Action
	// Target заполнен для redirect-решений.
	Target string
}

// Classify относит путь запроса к классу маршрута.
// Неизвестные пути считаются публичными: закрытые разделы
// перечислены явно.
func Classify(path string) RouteClass {
	switch {
	case path == "/login" || path == "/registro" ||
		strings.HasPrefix(path, "/password/"):
		return RouteAuth
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return RouteAdmin
	case path == "/mi-perfil" || strings.HasPrefix(path, "/mi-perfil/"):
		return RouteDashboard
	case path == "/favoritos" || path == "/contactos" ||
		strings.HasPrefix(path, "/contactos/"):
		return RouteSearcher
	default:
		return RoutePublic
	}
}

// Decide применяет таблицу решений доступа.
// Правила фиксированы: любое состояние, не разрешенное явно,
// заканчивается редиректом (fail-closed).
func Decide(class RouteClass, session *Session, path string) Decision {
	authed := session != nil

	switch class {
	case RoutePublic:
		return Decision{Action: ActionAllow}

	case RouteAuth:
		if !authed {
			return Decision{Action: ActionAllow}
		}
		// Залогиненным на страницах входа делать нечего.
		return Decision{Action: ActionRedirectRoleHome, Target: RoleHome(session.Role)}

	case RouteSearcher:
		if authed {
			return Decision{Action: ActionAllow}
		}
		return redirectLogin(path)

	case RouteDashboard:
		if !authed {
			return redirectLogin(path)
		}
		if session.Role == models.UserRoleProfessional || session.Role == models.UserRoleAdmin {
			return Decision{Action: ActionAllow}
		}
		return Decision{Action: ActionRedirectHome, Target: "/"}

	case RouteAdmin:
		if !authed {
			return redirectLogin(path)
		}
		if session.Role == models.UserRoleAdmin {
			return Decision{Action: ActionAllow}
		}
		return Decision{Action: ActionRedirectHome, Target: "/"}
	}

	return redirectLogin(path)
}

// RoleHome возвращает домашнюю страницу роли.
func RoleHome(role models.UserRole) string {
	if role == models.UserRoleProfessional {
		return "/mi-perfil"
	}
	return "/"
}

func redirectLogin(path string) Decision {
	return Decision{
		Action: ActionRedirectLogin,
		Target: "/login?redirect=" + path,
	}
}
