package models

// Contact - заявка искателя профессионалу. Append-only: создается
// и больше никогда не изменяется.
type Contact struct {
	BaseModel
	ProfileID     string        `gorm:"not null;index"`
	SearcherName  string        `gorm:"not null"`
	SearcherEmail string        `gorm:"not null"`
	SearcherPhone string
	Message       string
	Method        ContactMethod `gorm:"type:varchar(20);not null"`
	UserID        *string       `gorm:"index"` // заполняется, если искатель был залогинен
}
