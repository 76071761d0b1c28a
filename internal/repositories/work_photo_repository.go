package repositories

import (
	"errors"

	"rapifix_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWorkPhotoNotFound = errors.New("work photo not found")

type WorkPhotoRepository interface {
	Create(photo *models.WorkPhoto) error
	FindByID(id string) (*models.WorkPhoto, error)
	FindByProfile(profileID string) ([]models.WorkPhoto, error)
	CountByProfile(profileID string) (int64, error)
	UpdateCaption(id, caption string) error
	Reorder(profileID string, orderedIDs []string) error
	Delete(id string) error
}

type WorkPhotoRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkPhotoRepository(db *gorm.DB) WorkPhotoRepository {
	return &WorkPhotoRepositoryImpl{db: db}
}

// Create сохраняет фото в конец галереи: sort_order = текущее число фото + 1.
func (r *WorkPhotoRepositoryImpl) Create(photo *models.WorkPhoto) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.WorkPhoto{}).
			Where("profile_id = ?", photo.ProfileID).Count(&count).Error; err != nil {
			return err
		}
		photo.SortOrder = int(count) + 1
		return tx.Create(photo).Error
	})
}

func (r *WorkPhotoRepositoryImpl) FindByID(id string) (*models.WorkPhoto, error) {
	var photo models.WorkPhoto
	err := r.db.First(&photo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *WorkPhotoRepositoryImpl) FindByProfile(profileID string) ([]models.WorkPhoto, error) {
	var photos []models.WorkPhoto
	err := r.db.Where("profile_id = ?", profileID).
		Order("sort_order ASC").Find(&photos).Error
	return photos, err
}

func (r *WorkPhotoRepositoryImpl) CountByProfile(profileID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkPhoto{}).
		Where("profile_id = ?", profileID).Count(&count).Error
	return count, err
}

func (r *WorkPhotoRepositoryImpl) UpdateCaption(id, caption string) error {
	result := r.db.Model(&models.WorkPhoto{}).Where("id = ?", id).Update("caption", caption)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkPhotoNotFound
	}
	return nil
}

// Reorder переставляет фото по переданному порядку ID.
// Фото, не попавшие в список, сохраняют относительный порядок в хвосте.
func (r *WorkPhotoRepositoryImpl) Reorder(profileID string, orderedIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			result := tx.Model(&models.WorkPhoto{}).
				Where("id = ? AND profile_id = ?", id, profileID).
				Update("sort_order", i+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrWorkPhotoNotFound
			}
		}
		return nil
	})
}

func (r *WorkPhotoRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.WorkPhoto{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkPhotoNotFound
	}
	return nil
}
