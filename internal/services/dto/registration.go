package dto

// DTO шагов мастера регистрации профессионала.
// Каждый шаг отправляется отдельным запросом; сервер хранит
// промежуточное состояние до финальной отправки.

// BasicInfoStepRequest - шаг 1: контактные данные
type BasicInfoStepRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name" binding:"required,min=2,max=50"`
	Phone     string `json:"phone" binding:"required,min=8,max=20"`
	WhatsApp  string `json:"whatsapp" binding:"omitempty,max=20"`
	Email     string `json:"email" binding:"required,email"`
}

// CategoryStepRequest - шаг 2: рубрика
type CategoryStepRequest struct {
	CategoryID uint `json:"category_id" binding:"required,min=1"`
}

// NeighborhoodsStepRequest - шаг 3: районы работы
type NeighborhoodsStepRequest struct {
	NeighborhoodIDs []uint `json:"neighborhood_ids" binding:"required,min=1,max=5,dive,min=1"`
}

// DescriptionStepRequest - шаг 4: описание услуг.
// Лимит в 500 символов - потолок бесплатного тарифа,
// с которого начинает каждый новый профиль.
type DescriptionStepRequest struct {
	Description     string `json:"description" binding:"required,max=500"`
	YearsExperience *int   `json:"years_experience" binding:"omitempty,min=0,max=99"`
	Availability    string `json:"availability" binding:"required,availability"`
	PriceRange      string `json:"price_range" binding:"required,price-range"`
}

// WizardStateResponse - текущее состояние мастера
type WizardStateResponse struct {
	Step            string   `json:"step"`
	FirstName       string   `json:"first_name,omitempty"`
	LastName        string   `json:"last_name,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	WhatsApp        string   `json:"whatsapp,omitempty"`
	Email           string   `json:"email,omitempty"`
	CategoryID      uint     `json:"category_id,omitempty"`
	NeighborhoodIDs []uint   `json:"neighborhood_ids,omitempty"`
	Description     string   `json:"description,omitempty"`
	YearsExperience *int     `json:"years_experience,omitempty"`
	Availability    string   `json:"availability,omitempty"`
	PriceRange      string   `json:"price_range,omitempty"`
}

// RegistrationResultResponse - итог отправки мастера
type RegistrationResultResponse struct {
	ProfileID string `json:"profile_id"`
	Slug      string `json:"slug"`
}
