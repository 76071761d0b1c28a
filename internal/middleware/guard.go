package middleware

import (
	"net/http"

	"rapifix_backend/internal/guard"
	"rapifix_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// GuardMiddleware применяет таблицу решений доступа к страничным
// маршрутам: гостей с закрытых страниц отправляет на логин с
// сохранением пути, залогиненных со страниц входа - на их домашнюю.
// API-маршруты защищаются AuthMiddleware/RequireRoles, а не гардом.
func GuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *guard.Session
		claims, ok := parseBearer(c)
		if ok {
			session = &guard.Session{
				UserID: claims.UserID,
				Role:   claims.Role,
			}
		}

		path := c.Request.URL.Path
		decision := guard.Decide(guard.Classify(path), session, path)

		if decision.Action != guard.ActionAllow {
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
			return
		}

		if ok {
			c.Set("userID", claims.UserID)
			c.Set("role", claims.Role)
			c.Request = c.Request.WithContext(
				logger.WithUserID(c.Request.Context(), claims.UserID),
			)
		}
		c.Next()
	}
}
