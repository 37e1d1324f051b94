package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole пускает дальше только запросы с указанной ролью в claims.
// Вешается после AuthMiddleware.
func RequireRole(roleID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
			return
		}
		current, _ := v.(int)
		if current != roleID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso denegado: Rol no autorizado"})
			return
		}
		c.Next()
	}
}
