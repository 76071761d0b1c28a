package handlers

import (
	"net/http"

	"rapifix_backend/internal/middleware"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/repositories"
	"rapifix_backend/internal/services"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(v *validator.Validator, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    NewBaseHandler(v),
		profileService: profileService,
	}
}

// RegisterRoutes регистрирует публичные маршруты профилей и
// кабинет профессионала.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/buscar", h.Search)
	rg.GET("/profesionales/:slug", h.GetPublicProfile)

	own := rg.Group("/mi-perfil")
	own.Use(middleware.AuthMiddleware())
	own.Use(middleware.RequireRoles(models.UserRoleProfessional, models.UserRoleAdmin))
	{
		own.GET("", h.GetOwnProfile)
		own.GET("/dashboard", h.GetDashboard)
		own.PUT("", h.UpdateProfile)
		own.POST("/desactivar", h.Deactivate)
		own.POST("/activar", h.Reactivate)
	}
}

// GetPublicProfile - GET /api/profesionales/:slug
// Публичная страница профессионала вместе с JSON-LD разметкой.
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	slug := c.Param("slug")

	resp, err := h.profileService.GetPublicProfile(slug)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Search - GET /api/buscar?q=...&categoria=...&barrio=...
func (h *ProfileHandler) Search(c *gin.Context) {
	var criteria repositories.ProfileSearchCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	resp, err := h.profileService.Search(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOwnProfile - GET /api/mi-perfil
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetOwnProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDashboard - GET /api/mi-perfil/dashboard
func (h *ProfileHandler) GetDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetDashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile - PUT /api/mi-perfil
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Deactivate - POST /api/mi-perfil/desactivar
// Профиль скрывается из поиска и публичных страниц.
func (h *ProfileHandler) Deactivate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.Deactivate(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil desactivado"})
}

// Reactivate - POST /api/mi-perfil/activar
func (h *ProfileHandler) Reactivate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.Reactivate(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil activado"})
}
