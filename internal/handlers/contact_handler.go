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

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(v *validator.Validator, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    NewBaseHandler(v),
		contactService: contactService,
	}
}

// RegisterRoutes регистрирует контактные маршруты.
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/profesionales/:slug")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.POST("/contacto", h.CreateContact)
		public.POST("/contacto/click", h.TrackContact)
	}

	own := rg.Group("/mi-perfil")
	own.Use(middleware.AuthMiddleware())
	own.Use(middleware.RequireRoles(models.UserRoleProfessional, models.UserRoleAdmin))
	{
		own.GET("/contactos", h.GetProfileContacts)
	}
}

// CreateContact - POST /api/profesionales/:slug/contacto
// Форма контакта доступна гостям; залогиненный искатель
// привязывается к записи через OptionalAuthMiddleware.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	slug := c.Param("slug")
	userID := middleware.GetUserID(c)

	var req dto.CreateContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contactService.CreateContact(slug, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Mensaje enviado"})
}

// TrackContact - POST /api/profesionales/:slug/contacto/click
// Регистрирует клик по WhatsApp или teléfono для статистики.
func (h *ContactHandler) TrackContact(c *gin.Context) {
	slug := c.Param("slug")
	userID := middleware.GetUserID(c)

	var req dto.TrackContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contactService.TrackContact(slug, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registrado"})
}

// GetProfileContacts - GET /api/mi-perfil/contactos
func (h *ContactHandler) GetProfileContacts(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)

	resp, err := h.contactService.GetProfileContacts(userID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
