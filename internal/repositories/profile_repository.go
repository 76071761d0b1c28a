package repositories

import (
	"errors"
	"fmt"
	"time"

	"rapifix_backend/internal/models"
	"rapifix_backend/internal/utils"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(profile *models.Profile, neighborhoodIDs []uint) error
	FindByID(id string) (*models.Profile, error)
	FindByUserID(userID string) (*models.Profile, error)
	FindBySlug(slug string) (*models.Profile, error)
	Update(profile *models.Profile) error
	ReplaceNeighborhoods(profileID string, neighborhoodIDs []uint) error
	UpdateCompleteness(profileID string, completeness int) error
	UpdateProfilePhoto(profileID, url string) error
	UpdateLastActive(profileID string) error
	SetActive(profileID string, active bool) error
	SetVerified(profileID string, verified bool) error
	SetTier(profileID string, tier models.Tier) error
	Delete(id string) error

	GenerateUniqueSlug(firstName, lastName, categorySlug, neighborhoodSlug string) (string, error)

	Search(criteria ProfileSearchCriteria) ([]models.Profile, int64, error)
	FindAll(limit, offset int) ([]models.Profile, error)
	CountAll() (int64, error)
	CountActive() (int64, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// ProfileSearchCriteria - фильтры публичного поиска профессионалов.
type ProfileSearchCriteria struct {
	Query          string `form:"q"`
	CategorySlug   string `form:"categoria"`
	NeighborhoodID uint   `form:"barrio"`
	Availability   string `form:"disponibilidad"`
	PriceRange     string `form:"precio"`
	OnlyVerified   bool   `form:"verificados"`
	Page           int    `form:"page"`
	PageSize       int    `form:"page_size"`
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Create сохраняет профиль вместе с выбором районов одной транзакцией.
// Повторное создание для того же пользователя запрещено.
func (r *ProfileRepositoryImpl) Create(profile *models.Profile, neighborhoodIDs []uint) error {
	var existing models.Profile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		return replaceNeighborhoods(tx, profile.ID, neighborhoodIDs)
	})
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.Profile, error) {
	return r.findOne("id = ?", id)
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	return r.findOne("user_id = ?", userID)
}

func (r *ProfileRepositoryImpl) FindBySlug(slug string) (*models.Profile, error) {
	return r.findOne("slug = ?", slug)
}

func (r *ProfileRepositoryImpl) findOne(query string, arg interface{}) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Category").Preload("Neighborhoods").
		Preload("WorkPhotos", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&profile, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"first_name":        profile.FirstName,
		"last_name":         profile.LastName,
		"phone":             profile.Phone,
		"whats_app":         profile.WhatsApp,
		"email":             profile.Email,
		"category_id":       profile.CategoryID,
		"description":       profile.Description,
		"years_experience":  profile.YearsExperience,
		"availability":      profile.Availability,
		"price_range":       profile.PriceRange,
		"price_description": profile.PriceDescription,
		"certifications":    profile.Certifications,
		"updated_at":        time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ReplaceNeighborhoods(profileID string, neighborhoodIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return replaceNeighborhoods(tx, profileID, neighborhoodIDs)
	})
}

func replaceNeighborhoods(tx *gorm.DB, profileID string, neighborhoodIDs []uint) error {
	if err := tx.Where("profile_id = ?", profileID).
		Delete(&models.ProfileNeighborhood{}).Error; err != nil {
		return err
	}

	for _, id := range neighborhoodIDs {
		link := models.ProfileNeighborhood{ProfileID: profileID, NeighborhoodID: id}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateCompleteness(profileID string, completeness int) error {
	return r.updateField(profileID, "completeness", completeness)
}

func (r *ProfileRepositoryImpl) UpdateProfilePhoto(profileID, url string) error {
	return r.updateField(profileID, "profile_photo_url", url)
}

func (r *ProfileRepositoryImpl) UpdateLastActive(profileID string) error {
	return r.updateField(profileID, "last_active_at", time.Now())
}

func (r *ProfileRepositoryImpl) SetActive(profileID string, active bool) error {
	return r.updateField(profileID, "is_active", active)
}

func (r *ProfileRepositoryImpl) SetVerified(profileID string, verified bool) error {
	return r.updateField(profileID, "is_verified", verified)
}

func (r *ProfileRepositoryImpl) SetTier(profileID string, tier models.Tier) error {
	return r.updateField(profileID, "tier", tier)
}

func (r *ProfileRepositoryImpl) updateField(profileID, field string, value interface{}) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", profileID).Updates(map[string]interface{}{
		field:        value,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", id).Delete(&models.ProfileNeighborhood{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.WorkPhoto{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Profile{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
}

// GenerateUniqueSlug строит слаг вида "имя-фамилия-категория-район".
// При коллизии добавляется числовой суффикс: "-2", "-3" и так далее.
func (r *ProfileRepositoryImpl) GenerateUniqueSlug(firstName, lastName, categorySlug, neighborhoodSlug string) (string, error) {
	base := utils.Slugify(firstName, lastName, categorySlug, neighborhoodSlug)
	if base == "" {
		base = "profesional"
	}

	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := r.db.Model(&models.Profile{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Search возвращает страницу активных профилей по фильтрам
// плюс общее число совпадений.
func (r *ProfileRepositoryImpl) Search(criteria ProfileSearchCriteria) ([]models.Profile, int64, error) {
	var profiles []models.Profile

	query := r.db.Model(&models.Profile{}).Where("profiles.is_active = ?", true)

	if criteria.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = profiles.category_id").
			Where("categories.slug = ?", criteria.CategorySlug)
	}
	if criteria.NeighborhoodID != 0 {
		query = query.Joins("JOIN profile_neighborhoods pn ON pn.profile_id = profiles.id").
			Where("pn.neighborhood_id = ?", criteria.NeighborhoodID)
	}
	if criteria.Availability != "" {
		query = query.Where("profiles.availability = ?", criteria.Availability)
	}
	if criteria.PriceRange != "" {
		query = query.Where("profiles.price_range = ?", criteria.PriceRange)
	}
	if criteria.OnlyVerified {
		query = query.Where("profiles.is_verified = ?", true)
	}
	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where(
			"profiles.first_name ILIKE ? OR profiles.last_name ILIKE ? OR profiles.description ILIKE ?",
			search, search, search,
		)
	}

	var total int64
	if err := query.Distinct("profiles.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	page := criteria.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	err := query.Distinct().Preload("Category").Preload("Neighborhoods").
		Order("profiles.is_verified DESC, profiles.completeness DESC, profiles.created_at DESC").
		Limit(limit).Offset(offset).Find(&profiles).Error

	return profiles, total, err
}

// Admin operations

func (r *ProfileRepositoryImpl) FindAll(limit, offset int) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Preload("Category").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
