package handlers

import (
	"net/http"
	"net/url"

	"rapifix_backend/internal/middleware"
	"rapifix_backend/internal/services"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/utils"
	"rapifix_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(v *validator.Validator, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(v),
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/logout", h.Logout)
		auth.GET("/confirm", h.ConfirmEmail)
		auth.GET("/oauth/:provider", h.OAuthURL)
		auth.GET("/callback", h.OAuthCallback)
		auth.POST("/password/reset", h.RequestPasswordReset)
		auth.POST("/password/confirm", h.ResetPassword)
	}

	authed := rg.Group("/auth")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/password/change", h.ChangePassword)
	}
}

// Register - POST /api/auth/register
// Создает аккаунт искателя и отправляет письмо для подтверждения.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Te enviamos un email para confirmar tu cuenta",
	})
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshToken - POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout - POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

// ConfirmEmail - GET /api/auth/confirm?token_hash=...&type=signup
// Ссылка из письма. После подтверждения редиректит в приложение:
// signup открывает сессию, recovery ведет на форму нового пароля.
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	var req dto.ConfirmEmailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Redirect(http.StatusFound, "/login?error=confirmacion_invalida")
		return
	}

	next := utils.SafeRedirectPath(req.Next)

	if req.Type == "recovery" {
		c.Redirect(http.StatusFound, "/password/confirmar?token="+url.QueryEscape(req.TokenHash))
		return
	}

	resp, err := h.authService.ConfirmEmail(req.TokenHash)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error=confirmacion_invalida")
		return
	}

	target := next
	if target == "/" {
		target = resp.Redirect
	}
	c.Redirect(http.StatusFound, target+"?confirmado=1")
}

// OAuthURL - GET /api/auth/oauth/:provider?next=...
// Возвращает URL провайдера для начала OAuth-потока.
func (h *AuthHandler) OAuthURL(c *gin.Context) {
	provider := c.Param("provider")
	next := c.Query("next")

	authURL, err := h.authService.OAuthURL(provider, next)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": authURL})
}

// OAuthCallback - GET /api/auth/callback?code=...&next=...
// Возврат с провайдера. Обмен кода на сессию выполняет фронтенд
// после редиректа, здесь проверяется только безопасность пути.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	var req dto.OAuthCallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Redirect(http.StatusFound, "/login?error=oauth")
		return
	}

	next := utils.SafeRedirectPath(req.Next)
	c.Redirect(http.StatusFound, next+"?code="+url.QueryEscape(req.Code))
}

// RequestPasswordReset - POST /api/auth/password/reset
// Всегда отвечает одинаково, чтобы не раскрывать существование email.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Si el email existe, te enviamos las instrucciones",
	})
}

// ResetPassword - POST /api/auth/password/confirm
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.PasswordResetConfirm
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}

// ChangePassword - POST /api/auth/password/change (требует сессию)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}
