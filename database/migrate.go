package database

import (
	"fmt"

	"rapifix_backend/internal/config"
	"rapifix_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с DSN из конфигурации.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Neighborhood{},
		&models.Profile{},
		&models.ProfileNeighborhood{},
		&models.WorkPhoto{},
		&models.Review{},
		&models.Contact{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// SeedCatalog наполняет пустой каталог стартовым набором рубрик и
// барриос Кордобы. Повторный запуск ничего не трогает.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	if count == 0 {
		categories := []models.Category{
			{Slug: "plomeria", Name: "Plomería", Icon: "wrench", SortOrder: 1},
			{Slug: "electricidad", Name: "Electricidad", Icon: "zap", SortOrder: 2},
			{Slug: "gas", Name: "Gasista", Icon: "flame", SortOrder: 3},
			{Slug: "albanileria", Name: "Albañilería", Icon: "hammer", SortOrder: 4},
			{Slug: "pintura", Name: "Pintura", Icon: "paintbrush", SortOrder: 5},
			{Slug: "carpinteria", Name: "Carpintería", Icon: "ruler", SortOrder: 6},
			{Slug: "herreria", Name: "Herrería", Icon: "anvil", SortOrder: 7},
			{Slug: "aire-acondicionado", Name: "Aire acondicionado", Icon: "snowflake", SortOrder: 8},
			{Slug: "jardineria", Name: "Jardinería", Icon: "leaf", SortOrder: 9},
			{Slug: "limpieza", Name: "Limpieza", Icon: "sparkles", SortOrder: 10},
			{Slug: "cerrajeria", Name: "Cerrajería", Icon: "key", SortOrder: 11},
			{Slug: "techista", Name: "Techista", Icon: "home", SortOrder: 12},
		}
		for i := range categories {
			categories[i].IsActive = true
		}
		if err := db.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	if err := db.Model(&models.Neighborhood{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count neighborhoods: %w", err)
	}

	if count == 0 {
		neighborhoods := []models.Neighborhood{
			{Slug: "centro", Name: "Centro", Zone: "Centro"},
			{Slug: "nueva-cordoba", Name: "Nueva Córdoba", Zone: "Centro"},
			{Slug: "alberdi", Name: "Alberdi", Zone: "Centro"},
			{Slug: "guemes", Name: "Güemes", Zone: "Centro"},
			{Slug: "general-paz", Name: "General Paz", Zone: "Centro"},
			{Slug: "cerro-de-las-rosas", Name: "Cerro de las Rosas", Zone: "Noroeste"},
			{Slug: "arguello", Name: "Argüello", Zone: "Noroeste"},
			{Slug: "villa-belgrano", Name: "Villa Belgrano", Zone: "Noroeste"},
			{Slug: "urca", Name: "Urca", Zone: "Noroeste"},
			{Slug: "alta-cordoba", Name: "Alta Córdoba", Zone: "Norte"},
			{Slug: "cofico", Name: "Cofico", Zone: "Norte"},
			{Slug: "san-vicente", Name: "San Vicente", Zone: "Este"},
			{Slug: "pueyrredon", Name: "Pueyrredón", Zone: "Este"},
			{Slug: "jardin", Name: "Jardín", Zone: "Sur"},
			{Slug: "san-fernando", Name: "San Fernando", Zone: "Sur"},
			{Slug: "villa-el-libertador", Name: "Villa El Libertador", Zone: "Sur"},
		}
		for i := range neighborhoods {
			neighborhoods[i].IsActive = true
		}
		if err := db.Create(&neighborhoods).Error; err != nil {
			return fmt.Errorf("failed to seed neighborhoods: %w", err)
		}
	}

	return nil
}
