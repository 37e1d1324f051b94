package routes

import (
	"github.com/gin-gonic/gin"

	"acuario/internal/authz"
	"acuario/internal/handlers"
	"acuario/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	contactHandler *handlers.ContactHandler,
	authHandler *handlers.AuthHandler,
	leadHandler *handlers.LeadHandler,
) *gin.Engine {
	api := r.Group("/api")

	// ---- public
	api.POST("/contacto", contactHandler.Submit)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// ---- admin: управление лидами только с ролью 2
	admin := api.Group("", middleware.AuthMiddleware(jwtSecret), middleware.RequireRole(authz.RoleAdmin))
	{
		admin.GET("/leads", leadHandler.List)
		admin.GET("/leads/:id", leadHandler.GetByID)
		admin.PUT("/leads/:id/state", leadHandler.UpdateState)
		admin.GET("/states", leadHandler.States)
	}

	return r
}
