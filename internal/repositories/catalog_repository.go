package repositories

import (
	"errors"

	"rapifix_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrNeighborhoodNotFound = errors.New("neighborhood not found")
)

// CatalogRepository - справочники категорий и районов.
// Оба справочника наполняются сидом и меняются только из админки.
type CatalogRepository interface {
	FindActiveCategories() ([]models.Category, error)
	FindCategoryByID(id uint) (*models.Category, error)
	FindCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error

	FindActiveNeighborhoods() ([]models.Neighborhood, error)
	FindNeighborhoodByID(id uint) (*models.Neighborhood, error)
	FindNeighborhoodBySlug(slug string) (*models.Neighborhood, error)
	FindNeighborhoodsByIDs(ids []uint) ([]models.Neighborhood, error)
	CreateNeighborhood(neighborhood *models.Neighborhood) error
	UpdateNeighborhood(neighborhood *models.Neighborhood) error
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) FindActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepositoryImpl) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepositoryImpl) FindCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepositoryImpl) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CatalogRepositoryImpl) UpdateCategory(category *models.Category) error {
	result := r.db.Model(category).Updates(map[string]interface{}{
		"slug":       category.Slug,
		"name":       category.Name,
		"icon":       category.Icon,
		"is_active":  category.IsActive,
		"sort_order": category.SortOrder,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) FindActiveNeighborhoods() ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := r.db.Where("is_active = ?", true).
		Order("zone ASC, name ASC").Find(&neighborhoods).Error
	return neighborhoods, err
}

func (r *CatalogRepositoryImpl) FindNeighborhoodByID(id uint) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := r.db.First(&neighborhood, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNeighborhoodNotFound
		}
		return nil, err
	}
	return &neighborhood, nil
}

func (r *CatalogRepositoryImpl) FindNeighborhoodBySlug(slug string) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := r.db.First(&neighborhood, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNeighborhoodNotFound
		}
		return nil, err
	}
	return &neighborhood, nil
}

// FindNeighborhoodsByIDs возвращает только активные районы из списка.
// Неизвестные и выключенные ID молча отбрасываются - вызывающий код
// сверяет длину результата, если это важно.
func (r *CatalogRepositoryImpl) FindNeighborhoodsByIDs(ids []uint) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	if len(ids) == 0 {
		return neighborhoods, nil
	}
	err := r.db.Where("id IN ? AND is_active = ?", ids, true).Find(&neighborhoods).Error
	return neighborhoods, err
}

func (r *CatalogRepositoryImpl) CreateNeighborhood(neighborhood *models.Neighborhood) error {
	return r.db.Create(neighborhood).Error
}

func (r *CatalogRepositoryImpl) UpdateNeighborhood(neighborhood *models.Neighborhood) error {
	result := r.db.Model(neighborhood).Updates(map[string]interface{}{
		"slug":      neighborhood.Slug,
		"name":      neighborhood.Name,
		"zone":      neighborhood.Zone,
		"is_active": neighborhood.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNeighborhoodNotFound
	}
	return nil
}
