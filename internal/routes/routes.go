package routes

import (
	"rapifix_backend/internal/config"
	"rapifix_backend/internal/handlers"
	"rapifix_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP-маршруты приложения.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	cfg *config.Config,
) {
	ginRouter.GET("/health", appHandlers.HealthHandler.Check)

	// Локальное хранилище файлов отдается самим приложением.
	if cfg.Storage.Type == "local" {
		ginRouter.Static("/files", cfg.Storage.BasePath)
	}

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.RegistrationHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.CatalogHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.ContactHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}

	// Страничные маршруты фронтенда проходят через таблицу решений:
	// гость на закрытой странице уходит на /login, залогиненный со
	// страницы входа - на свою домашнюю.
	pages := ginRouter.Group("/")
	pages.Use(middleware.GuardMiddleware())
	{
		pages.GET("/login", serveApp)
		pages.GET("/registro", serveApp)
		pages.GET("/password/recuperar", serveApp)
		pages.GET("/password/confirmar", serveApp)
		pages.GET("/registro-profesional", serveApp)
		pages.GET("/mi-perfil", serveApp)
		pages.GET("/mi-perfil/*rest", serveApp)
		pages.GET("/admin", serveApp)
		pages.GET("/admin/*rest", serveApp)
		pages.GET("/favoritos", serveApp)
		pages.GET("/contactos", serveApp)
	}
}

// serveApp - заглушка SPA: фронтенд обслуживается отдельно, бэкенд
// отвечает только за решение о доступе и редиректы.
func serveApp(c *gin.Context) {
	c.Status(200)
}
