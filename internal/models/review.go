package models

type Review struct {
	BaseModel
	ProfileID  string `gorm:"not null;index"`
	AuthorName string
	Rating     int  `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string
	IsVisible  bool `gorm:"default:true"`
}
