package handlers

import (
	"rapifix_backend/internal/services"
	"rapifix_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	RegistrationHandler *RegistrationHandler
	ProfileHandler      *ProfileHandler
	CatalogHandler      *CatalogHandler
	ReviewHandler       *ReviewHandler
	ContactHandler      *ContactHandler
	UploadHandler       *UploadHandler
	AdminHandler        *AdminHandler
	HealthHandler       *HealthHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов.
func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		AuthHandler:         NewAuthHandler(v, sc.AuthService),
		RegistrationHandler: NewRegistrationHandler(v, sc.RegistrationService),
		ProfileHandler:      NewProfileHandler(v, sc.ProfileService),
		CatalogHandler:      NewCatalogHandler(v, sc.CatalogService),
		ReviewHandler:       NewReviewHandler(v, sc.ReviewService),
		ContactHandler:      NewContactHandler(v, sc.ContactService),
		UploadHandler:       NewUploadHandler(v, sc.UploadService),
		AdminHandler:        NewAdminHandler(v, sc.AdminService),
		HealthHandler:       NewHealthHandler(v),
	}
}
