package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"rapifix_backend/internal/auth"
	"rapifix_backend/internal/config"
	"rapifix_backend/internal/email"
	"rapifix_backend/internal/logger"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/utils"
	"rapifix_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	ConfirmEmail(tokenHash string) (*dto.AuthResponse, error)
	OAuthURL(provider, next string) (string, error)
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Register - регистрация искателя. Аккаунт создается с ролью searcher;
// роль professional выдается только после отправки мастера регистрации.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if !auth.ValidatePassword(req.Password) {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	confirmToken := generateRandomToken()

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRoleSearcher,
		IsConfirmed:  false,
		ConfirmToken: confirmToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	s.sendConfirmationEmail(user, confirmToken)

	return nil
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsConfirmed {
		return nil, apperrors.ErrEmailNotConfirmed
	}

	return s.buildAuthResponse(user, req.Redirect)
}

// RefreshToken выдает новую пару токенов по действующему refresh-токену.
// Старый токен гасится: каждая пара одноразовая.
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user, "")
}

// Logout гасит refresh-токен
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			// Уже погашен - выход все равно успешен.
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ConfirmEmail подтверждает email по токену из письма и сразу
// открывает сессию, чтобы пользователь не логинился второй раз.
func (s *AuthServiceImpl) ConfirmEmail(tokenHash string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.ConfirmByToken(tokenHash)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user, "")
}

// OAuthURL строит URL авторизации у внешнего провайдера.
// Путь возврата кодируется в state после проверки на безопасность.
func (s *AuthServiceImpl) OAuthURL(provider, next string) (string, error) {
	cfg := config.GetConfig()
	redirectURI := cfg.SiteURL + "/api/auth/callback"
	state := utils.SafeRedirectPath(next)

	switch provider {
	case "google":
		if cfg.OAuth.GoogleClientID == "" {
			return "", apperrors.NewBadRequestError("Proveedor no disponible")
		}
		return fmt.Sprintf(
			"%s?client_id=%s&redirect_uri=%s&response_type=code&scope=openid%%20email%%20profile&state=%s",
			cfg.OAuth.GoogleAuthURL,
			url.QueryEscape(cfg.OAuth.GoogleClientID),
			url.QueryEscape(redirectURI),
			url.QueryEscape(state),
		), nil
	case "facebook":
		if cfg.OAuth.FacebookAppID == "" {
			return "", apperrors.NewBadRequestError("Proveedor no disponible")
		}
		return fmt.Sprintf(
			"%s?client_id=%s&redirect_uri=%s&response_type=code&scope=email&state=%s",
			cfg.OAuth.FacebookAuthURL,
			url.QueryEscape(cfg.OAuth.FacebookAppID),
			url.QueryEscape(redirectURI),
			url.QueryEscape(state),
		), nil
	default:
		return "", apperrors.NewBadRequestError("Proveedor no disponible")
	}
}

// RequestPasswordReset отправляет письмо со ссылкой сброса.
// Для незарегистрированного email ответ тот же - без утечки
// информации о существовании аккаунта.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	resetToken := generateRandomToken()
	if err := s.userRepo.SetResetToken(user.ID, resetToken, time.Now().Add(time.Hour)); err != nil {
		return apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	resetURL := fmt.Sprintf("%s/password/confirmar?token=%s", cfg.SiteURL, resetToken)

	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplateResetPassword, email.TemplateData{
			"Name":     user.FirstName,
			"ResetURL": resetURL,
		}, &email.Email{
			To:      []string{user.Email},
			Subject: "Restablecer tu contraseña - Rapifix",
		})
		if err != nil {
			logger.WithError(err).Error("failed to send password reset email")
		}
	}()

	return nil
}

// ResetPassword устанавливает новый пароль по токену из письма.
// Все сессии пользователя закрываются.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	if !auth.ValidatePassword(newPassword) {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.DeleteUserRefreshTokens(user.ID); err != nil {
		logger.WithError(err).Warn("failed to revoke refresh tokens after password reset")
	}

	return nil
}

// ChangePassword меняет пароль из настроек аккаунта
func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewUnauthorizedError("Sesión inválida")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if !auth.ValidatePassword(newPassword) {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return s.userRepo.UpdatePassword(user.ID, hashedPassword)
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User, redirect string) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Пустой или опасный redirect схлопывается на домашнюю страницу роли.
	target := utils.SafeRedirectPath(redirect)
	if target == "/" && user.Role == models.UserRoleProfessional {
		target = "/mi-perfil"
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Redirect:     target,
		User:         dto.ToUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	token := generateRandomToken()

	refreshToken := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}

	if err := s.userRepo.CreateRefreshToken(refreshToken); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthServiceImpl) sendConfirmationEmail(user *models.User, token string) {
	cfg := config.GetConfig()
	confirmURL := fmt.Sprintf("%s/api/auth/confirm?token_hash=%s&type=signup", cfg.SiteURL, token)

	go func() {
		err := s.emailProvider.SendWithTemplate(email.TemplateConfirmEmail, email.TemplateData{
			"Name":       user.FirstName,
			"ConfirmURL": confirmURL,
		}, &email.Email{
			To:      []string{user.Email},
			Subject: "Confirmá tu email - Rapifix",
		})
		if err != nil {
			logger.WithError(err).Error("failed to send confirmation email")
		}
	}()
}

func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand не возвращает ошибок на поддерживаемых платформах
		panic(err)
	}
	return hex.EncodeToString(b)
}
