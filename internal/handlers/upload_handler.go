package handlers

import (
	"net/http"

	"rapifix_backend/internal/middleware"
	"rapifix_backend/internal/models"
	"rapifix_backend/internal/services"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/validator"
	"rapifix_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(v *validator.Validator, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   NewBaseHandler(v),
		uploadService: uploadService,
	}
}

// RegisterRoutes регистрирует загрузку и управление фотографиями.
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	own := rg.Group("/mi-perfil")
	own.Use(middleware.AuthMiddleware())
	own.Use(middleware.RequireRoles(models.UserRoleProfessional, models.UserRoleAdmin))
	{
		own.POST("/foto", h.UploadProfilePhoto)
		own.POST("/fotos", h.UploadWorkPhoto)
		own.PUT("/fotos", h.Reorder)
		own.PATCH("/fotos/:id", h.UpdateCaption)
		own.DELETE("/fotos/:id", h.DeleteWorkPhoto)
	}
}

// UploadProfilePhoto - POST /api/mi-perfil/foto (multipart, поле "file")
func (h *UploadHandler) UploadProfilePhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Falta el archivo"))
		return
	}

	resp, err := h.uploadService.UploadProfilePhoto(c.Request.Context(), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UploadWorkPhoto - POST /api/mi-perfil/fotos (multipart, поле "file")
func (h *UploadHandler) UploadWorkPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Falta el archivo"))
		return
	}

	caption := c.PostForm("caption")

	resp, err := h.uploadService.UploadWorkPhoto(c.Request.Context(), userID, file, caption)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateCaption - PATCH /api/mi-perfil/fotos/:id
func (h *UploadHandler) UpdateCaption(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	photoID := c.Param("id")

	var req dto.UpdateCaptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.uploadService.UpdateWorkPhotoCaption(userID, photoID, req.Caption); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Foto actualizada"})
}

// Reorder - PUT /api/mi-perfil/fotos
func (h *UploadHandler) Reorder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReorderPhotosRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.uploadService.ReorderWorkPhotos(userID, req.PhotoIDs); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Orden actualizado"})
}

// DeleteWorkPhoto - DELETE /api/mi-perfil/fotos/:id
func (h *UploadHandler) DeleteWorkPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	photoID := c.Param("id")

	if err := h.uploadService.DeleteWorkPhoto(c.Request.Context(), userID, photoID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Foto eliminada"})
}
