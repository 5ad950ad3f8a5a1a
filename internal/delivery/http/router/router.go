// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"dealfinder/config"
	"dealfinder/internal/delivery/http/middleware"
	"dealfinder/internal/delivery/http/router/handler"
	"dealfinder/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultUploadsPath = "/uploads"

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	PromotionHandler *handler.PromotionHandler
	BusinessHandler  *handler.BusinessHandler
	AdminHandler     *handler.AdminHandler
	MediaHandler     *handler.MediaHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	promotionHandler *handler.PromotionHandler
	businessHandler  *handler.BusinessHandler
	adminHandler     *handler.AdminHandler
	mediaHandler     *handler.MediaHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		promotionHandler: params.PromotionHandler,
		businessHandler:  params.BusinessHandler,
		adminHandler:     params.AdminHandler,
		mediaHandler:     params.MediaHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	publisher := r.authMiddleware.RequireRole(entity.RoleBusiness, entity.RoleAdmin)
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)

		authGroup.GET("/me", r.authHandler.Me, authenticate)
		authGroup.PUT("/update-profile", r.authHandler.UpdateProfile, authenticate)
		authGroup.PUT("/update-password", r.authHandler.UpdatePassword, authenticate)
	}

	// Promotion routes; click and search identify signed-in visitors without requiring it
	promotions := api.Group("/promotions")
	{
		promotions.GET("", r.promotionHandler.List)
		promotions.GET("/featured", r.promotionHandler.Featured)
		promotions.GET("/category/:category", r.promotionHandler.ListByCategory)
		promotions.GET("/search", r.promotionHandler.Search, r.authMiddleware.Identify)
		promotions.GET("/:id", r.promotionHandler.Get)
		promotions.POST("/:id/click", r.promotionHandler.Click, r.authMiddleware.Identify)

		promotions.POST("", r.promotionHandler.Create, authenticate, publisher)
		promotions.GET("/:id/qrcode", r.promotionHandler.QRCode, authenticate, publisher)
		promotions.PUT("/:id", r.promotionHandler.Update, authenticate, publisher)
		promotions.DELETE("/:id", r.promotionHandler.Delete, authenticate, publisher)
	}

	// Business routes
	business := api.Group("/business")
	{
		business.GET("/:id", r.businessHandler.Get)

		business.POST("", r.businessHandler.Create, authenticate, publisher)
		business.GET("/my-businesses", r.businessHandler.MyBusinesses, authenticate, publisher)
		business.GET("/my-businesses/:id/promotions", r.businessHandler.Promotions, authenticate, publisher)
		business.GET("/my-businesses/:id/analytics", r.businessHandler.Analytics, authenticate, publisher)
		business.PUT("/:id", r.businessHandler.Update, authenticate, publisher)
		business.DELETE("/:id", r.businessHandler.Delete, authenticate, admin)
		business.PATCH("/:id/status", r.businessHandler.SetStatus, authenticate, admin)
	}

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(authenticate) // First, check if logged in
	adminGroup.Use(admin)        // Then, check for the role
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/analytics", r.adminHandler.Analytics)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.GET("/businesses", r.adminHandler.ListBusinesses)
		adminGroup.PATCH("/businesses/:id/verify", r.adminHandler.VerifyBusiness)

		adminGroup.GET("/promotions", r.adminHandler.ListPromotions)
		adminGroup.PATCH("/promotions/:id/featured", r.adminHandler.SetFeatured)
	}

	// Stored media is served outside /api under the public path the storage hands out
	e.GET(r.uploadsPath()+"/*", r.mediaHandler.Serve)
}

func (r *router) uploadsPath() string {
	if r.config == nil || r.config.Storage == nil || strings.Trim(r.config.Storage.PublicPath, "/") == "" {
		return defaultUploadsPath
	}

	return "/" + strings.Trim(r.config.Storage.PublicPath, "/")
}
