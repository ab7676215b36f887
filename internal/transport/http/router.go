package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/communication-service/internal/transport/http/handler"
	"github.com/ErlanBelekov/communication-service/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	tokens middleware.AccessTokenValidator,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	customerHandler *handler.CustomerHandler,
	templateHandler *handler.TemplateHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens)
	api := r.Group("/api/v1")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Registration is anonymous; everything else on users is protected
	users := api.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", authMW, userHandler.List)
	users.GET("/search", authMW, userHandler.Search)
	users.GET("/:id", authMW, userHandler.GetByID)
	users.PUT("/:id", authMW, userHandler.Update)
	users.DELETE("/:id", authMW, userHandler.Delete)

	customers := api.Group("/customers", authMW)
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List)
	customers.GET("/search", customerHandler.Search)
	customers.GET("/:id", customerHandler.GetByID)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	templates := api.Group("/templates", authMW)
	templates.POST("", templateHandler.Create)
	templates.GET("", templateHandler.List)
	templates.GET("/search", templateHandler.Search)
	templates.GET("/:id", templateHandler.GetByID)
	templates.PUT("/:id", templateHandler.Update)
	templates.DELETE("/:id", templateHandler.Delete)
	templates.POST("/:id/send", templateHandler.Send)

	return r
}
