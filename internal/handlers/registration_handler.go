package handlers

import (
	"net/http"

	"rapifix_backend/internal/middleware"
	"rapifix_backend/internal/services"
	"rapifix_backend/internal/services/dto"
	"rapifix_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler обслуживает пошаговый мастер регистрации
// профессионала: datos básicos -> rubro -> barrios -> descripción.
type RegistrationHandler struct {
	*BaseHandler
	registrationService services.RegistrationService
}

func NewRegistrationHandler(v *validator.Validator, registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         NewBaseHandler(v),
		registrationService: registrationService,
	}
}

// RegisterRoutes регистрирует маршруты мастера. Все шаги требуют
// сессию: мастер доступен залогиненному искателю, который становится
// профессионалом после последнего шага.
func (h *RegistrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wizard := rg.Group("/registro-profesional")
	wizard.Use(middleware.AuthMiddleware())
	{
		wizard.GET("", h.GetState)
		wizard.POST("/datos-basicos", h.SubmitBasicInfo)
		wizard.POST("/rubro", h.SubmitCategory)
		wizard.POST("/barrios", h.SubmitNeighborhoods)
		wizard.POST("/descripcion", h.SubmitDescription)
		wizard.POST("/atras", h.GoBack)
		wizard.DELETE("", h.Abandon)
	}
}

// GetState - GET /api/registro-profesional
func (h *RegistrationHandler) GetState(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	state, err := h.registrationService.GetState(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SubmitBasicInfo - POST /api/registro-profesional/datos-basicos
func (h *RegistrationHandler) SubmitBasicInfo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BasicInfoStepRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	state, err := h.registrationService.SubmitBasicInfo(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SubmitCategory - POST /api/registro-profesional/rubro
func (h *RegistrationHandler) SubmitCategory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CategoryStepRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	state, err := h.registrationService.SubmitCategory(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SubmitNeighborhoods - POST /api/registro-profesional/barrios
func (h *RegistrationHandler) SubmitNeighborhoods(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.NeighborhoodsStepRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	state, err := h.registrationService.SubmitNeighborhoods(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SubmitDescription - POST /api/registro-profesional/descripcion
// Последний шаг: создает профиль и завершает мастер.
func (h *RegistrationHandler) SubmitDescription(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DescriptionStepRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.registrationService.SubmitDescription(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GoBack - POST /api/registro-profesional/atras
// Возврат на предыдущий шаг без потери введенных данных.
func (h *RegistrationHandler) GoBack(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	state, err := h.registrationService.GoBack(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Abandon - DELETE /api/registro-profesional
func (h *RegistrationHandler) Abandon(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	h.registrationService.Abandon(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Registro descartado"})
}
