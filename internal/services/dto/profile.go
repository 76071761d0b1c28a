package dto

import (
	"time"

	"rapifix_backend/internal/models"
	"rapifix_backend/internal/seo"
)

// UpdateProfileRequest - правка профиля из кабинета.
// Потолок описания в 2000 символов - максимум платного тарифа;
// фактический лимит тарифа проверяет сервис.
type UpdateProfileRequest struct {
	FirstName        string   `json:"first_name" binding:"required,min=2,max=50"`
	LastName         string   `json:"last_name" binding:"required,min=2,max=50"`
	Phone            string   `json:"phone" binding:"required,min=8,max=20"`
	WhatsApp         string   `json:"whatsapp" binding:"omitempty,max=20"`
	Email            string   `json:"email" binding:"required,email"`
	CategoryID       uint     `json:"category_id" binding:"required,min=1"`
	NeighborhoodIDs  []uint   `json:"neighborhood_ids" binding:"required,min=1,max=5,dive,min=1"`
	Description      string   `json:"description" binding:"required,max=2000"`
	YearsExperience  *int     `json:"years_experience" binding:"omitempty,min=0,max=99"`
	Availability     string   `json:"availability" binding:"required,availability"`
	PriceRange       string   `json:"price_range" binding:"required,price-range"`
	PriceDescription string   `json:"price_description" binding:"omitempty,max=200"`
	Certifications   []string `json:"certifications" binding:"omitempty,max=10,dive,min=2,max=100"`
}

// NeighborhoodDTO - район в ответах API
type NeighborhoodDTO struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Zone string `json:"zone"`
}

// CategoryDTO - рубрика в ответах API
type CategoryDTO struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// WorkPhotoDTO - фото работы
type WorkPhotoDTO struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Caption   string `json:"caption,omitempty"`
	SortOrder int    `json:"sort_order"`
}

// ReviewDTO - отзыв на публичной странице
type ReviewDTO struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileResponse - полный профиль для публичной страницы
// и кабинета профессионала.
type ProfileResponse struct {
	ID               string            `json:"id"`
	Slug             string            `json:"slug"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	FullName         string            `json:"full_name"`
	Phone            string            `json:"phone"`
	WhatsApp         string            `json:"whatsapp"`
	Email            string            `json:"email"`
	Category         CategoryDTO       `json:"category"`
	Neighborhoods    []NeighborhoodDTO `json:"neighborhoods"`
	Description      string            `json:"description"`
	YearsExperience  *int              `json:"years_experience,omitempty"`
	Availability     string            `json:"availability"`
	PriceRange       string            `json:"price_range"`
	PriceSymbol      string            `json:"price_symbol"`
	PriceDescription string            `json:"price_description,omitempty"`
	Certifications   []string          `json:"certifications,omitempty"`
	Tier             string            `json:"tier"`
	IsVerified       bool              `json:"is_verified"`
	IsActive         bool              `json:"is_active"`
	Completeness     int               `json:"completeness"`
	ProfilePhotoURL  string            `json:"profile_photo_url,omitempty"`
	WorkPhotos       []WorkPhotoDTO    `json:"work_photos"`
	AvgRating        float64           `json:"avg_rating"`
	ReviewCount      int               `json:"review_count"`
	Reviews          []ReviewDTO       `json:"reviews"`
	CreatedAt        time.Time         `json:"created_at"`
}

// PublicProfileResponse - профиль плюс SEO-разметка страницы.
type PublicProfileResponse struct {
	Profile ProfileResponse   `json:"profile"`
	JSONLD  seo.LocalBusiness `json:"json_ld"`
}

// ProfileCardDTO - карточка в результатах поиска
type ProfileCardDTO struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	FullName        string            `json:"full_name"`
	Category        CategoryDTO       `json:"category"`
	Neighborhoods   []NeighborhoodDTO `json:"neighborhoods"`
	Description     string            `json:"description"`
	Availability    string            `json:"availability"`
	PriceSymbol     string            `json:"price_symbol"`
	IsVerified      bool              `json:"is_verified"`
	ProfilePhotoURL string            `json:"profile_photo_url,omitempty"`
	AvgRating       float64           `json:"avg_rating"`
	ReviewCount     int               `json:"review_count"`
}

// SearchResponse - страница результатов поиска
type SearchResponse struct {
	Profiles []ProfileCardDTO `json:"profiles"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// DashboardResponse - сводка кабинета профессионала
type DashboardResponse struct {
	Profile      ProfileResponse `json:"profile"`
	ContactCount int64           `json:"contact_count"`
	ReviewCount  int64           `json:"review_count"`
	AvgRating    float64         `json:"avg_rating"`
}

// ToCategoryDTO собирает CategoryDTO из модели
func ToCategoryDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:   c.ID,
		Slug: c.Slug,
		Name: c.Name,
		Icon: c.Icon,
	}
}

// ToNeighborhoodDTOs собирает список районов
func ToNeighborhoodDTOs(ns []models.Neighborhood) []NeighborhoodDTO {
	out := make([]NeighborhoodDTO, 0, len(ns))
	for _, n := range ns {
		out = append(out, NeighborhoodDTO{
			ID:   n.ID,
			Slug: n.Slug,
			Name: n.Name,
			Zone: n.Zone,
		})
	}
	return out
}

// ToWorkPhotoDTOs собирает список фото работ
func ToWorkPhotoDTOs(photos []models.WorkPhoto) []WorkPhotoDTO {
	out := make([]WorkPhotoDTO, 0, len(photos))
	for _, p := range photos {
		out = append(out, WorkPhotoDTO{
			ID:        p.ID,
			URL:       p.URL,
			Caption:   p.Caption,
			SortOrder: p.SortOrder,
		})
	}
	return out
}

// ToReviewDTOs собирает список отзывов
func ToReviewDTOs(reviews []models.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, ReviewDTO{
			ID:         rv.ID,
			AuthorName: rv.AuthorName,
			Rating:     rv.Rating,
			Comment:    rv.Comment,
			CreatedAt:  rv.CreatedAt,
		})
	}
	return out
}
