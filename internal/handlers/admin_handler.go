package handlers

import (
	"net/http"

	"rapifix_backend/internal/middleware"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/services"
	"rapifix_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(v *validator.Validator, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  NewBaseHandler(v),
		adminService: adminService,
	}
}

// RegisterRoutes регистрирует административные маршруты.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/stats", h.GetStats)
		admin.GET("/usuarios", h.ListUsers)
		admin.GET("/perfiles", h.ListProfiles)
		admin.PATCH("/perfiles/:id/verificado", h.SetProfileVerified)
		admin.PATCH("/perfiles/:id/activo", h.SetProfileActive)
		admin.PATCH("/perfiles/:id/plan", h.SetProfileTier)
	}
}

// GetStats - GET /api/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers - GET /api/admin/usuarios
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	users, total, err := h.adminService.ListUsers(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
	})
}

// ListProfiles - GET /api/admin/perfiles
func (h *AdminHandler) ListProfiles(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	profiles, total, err := h.adminService.ListProfiles(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
		"total":    total,
	})
}

// SetProfileVerified - PATCH /api/admin/perfiles/:id/verificado
func (h *AdminHandler) SetProfileVerified(c *gin.Context) {
	profileID := c.Param("id")

	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.SetProfileVerified(profileID, *req.Verified); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil actualizado"})
}

// SetProfileActive - PATCH /api/admin/perfiles/:id/activo
func (h *AdminHandler) SetProfileActive(c *gin.Context) {
	profileID := c.Param("id")

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.SetProfileActive(profileID, *req.Active); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil actualizado"})
}

// SetProfileTier - PATCH /api/admin/perfiles/:id/plan
func (h *AdminHandler) SetProfileTier(c *gin.Context) {
	profileID := c.Param("id")

	var req struct {
		Tier string `json:"tier" binding:"required"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.SetProfileTier(profileID, req.Tier); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan actualizado"})
}
