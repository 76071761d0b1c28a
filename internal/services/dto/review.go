package dto

// CreateReviewRequest - новый отзыв на публичной странице.
// Отзывы анонимны в смысле аккаунта: достаточно имени.
type CreateReviewRequest struct {
	AuthorName string `json:"author_name" binding:"required,min=2,max=50"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"omitempty,max=1000"`
}

// RatingSummary - сводка рейтинга профиля
type RatingSummary struct {
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}
