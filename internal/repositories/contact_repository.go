package repositories

import (
	"rapifix_backend/internal/models"

	"gorm.io/gorm"
)

// ContactRepository - журнал обращений к профессионалам.
// Записи только добавляются, редактирование не предусмотрено.
type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByProfile(profileID string, limit, offset int) ([]models.Contact, error)
	CountByProfile(profileID string) (int64, error)
	FindByUser(userID string, limit, offset int) ([]models.Contact, error)
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepositoryImpl) FindByProfile(profileID string, limit, offset int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("profile_id = ?", profileID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepositoryImpl) CountByProfile(profileID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("profile_id = ?", profileID).Count(&count).Error
	return count, err
}

func (r *ContactRepositoryImpl) FindByUser(userID string, limit, offset int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	return contacts, err
}
