package dto

import (
	"time"

	"rapifix_backend/internal/models"
)

// RegisterRequest - запрос регистрации искателя
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,password-strength"`
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name" binding:"required,min=2,max=50"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// Redirect - путь возврата после входа, проверяется на безопасность
	Redirect string `json:"redirect"`
}

// RefreshTokenRequest - запрос обновления токена
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest - запрос выхода
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ConfirmEmailRequest - подтверждение email по ссылке из письма
type ConfirmEmailRequest struct {
	TokenHash string `form:"token_hash" binding:"required"`
	Type      string `form:"type" binding:"required,oneof=signup recovery"`
	Next      string `form:"next"`
}

// OAuthCallbackRequest - возврат с провайдера OAuth
type OAuthCallbackRequest struct {
	Code string `form:"code" binding:"required"`
	Next string `form:"next"`
}

// PasswordResetRequest - запрос сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetConfirm - подтверждение сброса пароля
type PasswordResetConfirm struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,password-strength"`
}

// ChangePasswordRequest - смена пароля в настройках аккаунта
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,password-strength"`
}

// AuthResponse - ответ с токенами
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Redirect     string  `json:"redirect"`
	User         UserDTO `json:"user"`
}

// UserDTO - базовая информация о пользователе
type UserDTO struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Role        models.UserRole `json:"role"`
	IsConfirmed bool            `json:"is_confirmed"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToUserDTO собирает UserDTO из модели
func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		IsConfirmed: u.IsConfirmed,
		CreatedAt:   u.CreatedAt,
	}
}
