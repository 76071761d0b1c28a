package handlers

import (
	"net/http"

	"rapifix_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(v *validator.Validator) *HealthHandler {
	return &HealthHandler{BaseHandler: NewBaseHandler(v)}
}

// Check - GET /health
// Проверяет доступность БД через соединение из контекста запроса.
func (h *HealthHandler) Check(c *gin.Context) {
	db := h.GetDB(c)

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
