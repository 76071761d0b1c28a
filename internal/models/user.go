package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FirstName    string   `gorm:"not null"`
	LastName     string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'searcher'"`
	IsConfirmed  bool     `gorm:"default:false"`
	ConfirmToken string
	ResetToken   string
	ResetTokenExp *time.Time

	// Relations
	Profile       *Profile       `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
