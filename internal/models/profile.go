package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Profile - публичный профиль профессионала.
// Slug генерируется один раз при создании и не меняется.
type Profile struct {
	BaseModel
	UserID     string `gorm:"uniqueIndex;not null"`
	Slug       string `gorm:"uniqueIndex;not null"`
	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null"`
	Phone      string `gorm:"not null"`
	WhatsApp   string
	Email      string `gorm:"not null"`
	CategoryID uint   `gorm:"not null;index"`

	Description      string
	YearsExperience  *int
	Availability     Availability   `gorm:"type:varchar(20)"`
	PriceRange       PriceRange     `gorm:"type:varchar(20)"`
	PriceDescription string
	Certifications   datatypes.JSON `gorm:"type:jsonb"` // ["Matrícula ...", ...]

	Tier            Tier `gorm:"type:varchar(10);not null;default:'free'"`
	IsVerified      bool `gorm:"default:false"`
	IsActive        bool `gorm:"default:true"`
	Completeness    int  `gorm:"default:0"` // 0-100
	ProfilePhotoURL string
	LastActiveAt    *time.Time

	// Relations
	Category      Category       `gorm:"foreignKey:CategoryID"`
	Neighborhoods []Neighborhood `gorm:"many2many:profile_neighborhoods"`
	WorkPhotos    []WorkPhoto    `gorm:"foreignKey:ProfileID"`
	Reviews       []Review       `gorm:"foreignKey:ProfileID"`
}

// FullName возвращает отображаемое имя профессионала
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// GetCertifications возвращает сертификации как slice строк
func (p *Profile) GetCertifications() []string {
	var certs []string
	if len(p.Certifications) > 0 {
		_ = json.Unmarshal(p.Certifications, &certs)
	}
	return certs
}

// SetCertifications устанавливает сертификации
func (p *Profile) SetCertifications(certs []string) {
	data, _ := json.Marshal(certs)
	p.Certifications = datatypes.JSON(data)
}

// WorkPhoto - фото работы профессионала, количество ограничено тарифом.
type WorkPhoto struct {
	BaseModel
	ProfileID string `gorm:"not null;index"`
	URL       string `gorm:"not null"`
	Caption   string
	SortOrder int `gorm:"default:0"`
}
