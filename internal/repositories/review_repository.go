package repositories

import (
	"errors"

	"rapifix_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindVisibleByProfile(profileID string, limit, offset int) ([]models.Review, error)
	CountVisibleByProfile(profileID string) (int64, error)
	SumVisibleRatings(profileID string) (int64, error)
	SetVisibility(id string, visible bool) error
	Delete(id string) error

	// Admin operations
	FindAll(limit, offset int) ([]models.Review, error)
	CountAll() (int64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindVisibleByProfile(profileID string, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("profile_id = ? AND is_visible = ?", profileID, true).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) CountVisibleByProfile(profileID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("profile_id = ? AND is_visible = ?", profileID, true).Count(&count).Error
	return count, err
}

// SumVisibleRatings возвращает сумму оценок видимых отзывов.
// Среднее и округление считает сервис.
func (r *ReviewRepositoryImpl) SumVisibleRatings(profileID string) (int64, error) {
	var sum *int64
	err := r.db.Model(&models.Review{}).
		Where("profile_id = ? AND is_visible = ?", profileID, true).
		Select("SUM(rating)").Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *ReviewRepositoryImpl) SetVisibility(id string, visible bool) error {
	result := r.db.Model(&models.Review{}).Where("id = ?", id).Update("is_visible", visible)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// Admin operations

func (r *ReviewRepositoryImpl) FindAll(limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Count(&count).Error
	return count, err
}
