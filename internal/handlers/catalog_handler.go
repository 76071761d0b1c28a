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

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(v *validator.Validator, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    NewBaseHandler(v),
		catalogService: catalogService,
	}
}

// RegisterRoutes регистрирует публичный каталог и управление им.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalogo")
	{
		catalog.GET("", h.GetCatalog)
		catalog.GET("/barrios-por-zona", h.GetNeighborhoodsByZone)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/categorias", h.CreateCategory)
		admin.PUT("/categorias/:id", h.UpdateCategory)
		admin.POST("/barrios", h.CreateNeighborhood)
		admin.PUT("/barrios/:id", h.UpdateNeighborhood)
	}
}

// GetCatalog - GET /api/catalogo
// Активные рубрики и районы для форм регистрации и фильтров поиска.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	resp, err := h.catalogService.GetCatalog()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetNeighborhoodsByZone - GET /api/catalogo/barrios-por-zona
func (h *CatalogHandler) GetNeighborhoodsByZone(c *gin.Context) {
	zones, err := h.catalogService.GetNeighborhoodsByZone()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"zones": zones})
}

// CreateCategory - POST /api/admin/categorias
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.UpsertCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalogService.UpsertCategory(0, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory - PUT /api/admin/categorias/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpsertCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.catalogService.UpsertCategory(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateNeighborhood - POST /api/admin/barrios
func (h *CatalogHandler) CreateNeighborhood(c *gin.Context) {
	var req dto.UpsertNeighborhoodRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	neighborhood, err := h.catalogService.UpsertNeighborhood(0, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, neighborhood)
}

// UpdateNeighborhood - PUT /api/admin/barrios/:id
func (h *CatalogHandler) UpdateNeighborhood(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpsertNeighborhoodRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	neighborhood, err := h.catalogService.UpsertNeighborhood(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, neighborhood)
}
