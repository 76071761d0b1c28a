package handlers

import (
	"net/http"

	"rapifix_backend/internal/middleware"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/services"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(v *validator.Validator, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(v),
		reviewService: reviewService,
	}
}

// RegisterRoutes регистрирует публичные отзывы и их модерацию.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profesionales/:slug/resenas", h.GetProfileReviews)
	rg.POST("/profesionales/:slug/resenas", h.CreateReview)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/resenas", h.ListAll)
		admin.PATCH("/resenas/:id/visibilidad", h.SetVisibility)
		admin.DELETE("/resenas/:id", h.DeleteReview)
	}
}

// CreateReview - POST /api/profesionales/:slug/resenas
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	slug := c.Param("slug")

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(slug, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetProfileReviews - GET /api/profesionales/:slug/resenas
func (h *ReviewHandler) GetProfileReviews(c *gin.Context) {
	slug := c.Param("slug")
	page, pageSize := ParsePagination(c)

	reviews, summary, err := h.reviewService.GetProfileReviews(slug, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"summary": summary,
	})
}

// ListAll - GET /api/admin/resenas
func (h *ReviewHandler) ListAll(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	reviews, total, err := h.reviewService.ListAll(pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
	})
}

// SetVisibility - PATCH /api/admin/resenas/:id/visibilidad
func (h *ReviewHandler) SetVisibility(c *gin.Context) {
	reviewID := c.Param("id")

	var req struct {
		Visible *bool `json:"visible" binding:"required"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.reviewService.SetVisibility(reviewID, *req.Visible); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reseña actualizada"})
}

// DeleteReview - DELETE /api/admin/resenas/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID := c.Param("id")

	if err := h.reviewService.DeleteReview(reviewID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reseña eliminada"})
}
