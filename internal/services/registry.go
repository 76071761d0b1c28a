package services

import (
	"rapifix_backend/internal/email"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	RegistrationService RegistrationService
	ProfileService      ProfileService
	CatalogService      CatalogService
	ReviewService       ReviewService
	ContactService      ContactService
	UploadService       UploadService
	AdminService        AdminService
}

// NewServiceContainer собирает репозитории и сервисы поверх
// подключения к БД, почтового провайдера и хранилища файлов.
func NewServiceContainer(db *gorm.DB, emailProvider email.Provider, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	workPhotoRepo := repositories.NewWorkPhotoRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, emailProvider),
		RegistrationService: NewRegistrationService(userRepo, profileRepo, catalogRepo),
		ProfileService:      NewProfileService(profileRepo, catalogRepo, reviewRepo, contactRepo),
		CatalogService:      NewCatalogService(catalogRepo),
		ReviewService:       NewReviewService(reviewRepo, profileRepo),
		ContactService:      NewContactService(contactRepo, profileRepo, emailProvider),
		UploadService:       NewUploadService(profileRepo, workPhotoRepo, store),
		AdminService:        NewAdminService(userRepo, profileRepo, reviewRepo),
	}
}
