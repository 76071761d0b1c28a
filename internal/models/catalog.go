package models

// Category и Neighborhood - справочные сущности каталога.
// Базовый набор сеется при миграции, дальше ими управляет админ.

type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Icon      string
	IsActive  bool `gorm:"default:true"`
	SortOrder int  `gorm:"default:0"`
}

type Neighborhood struct {
	ID       uint   `gorm:"primaryKey"`
	Slug     string `gorm:"uniqueIndex;not null"`
	Name     string `gorm:"not null"`
	Zone     string `gorm:"not null;index"`
	IsActive bool   `gorm:"default:true"`
}

// ProfileNeighborhood - связка профиль-баррио (many-to-many).
type ProfileNeighborhood struct {
	ProfileID      string `gorm:"primaryKey"`
	NeighborhoodID uint   `gorm:"primaryKey"`
}
