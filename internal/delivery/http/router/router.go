// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/delivery/http/router/handler"
	"internhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProvisionHandler  *handler.ProvisionHandler
	InternshipHandler *handler.InternshipHandler
	AuthMiddleware    *middleware.AuthMiddleware
	PerimeterFilter   *middleware.PerimeterFilter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	provisionHandler  *handler.ProvisionHandler
	internshipHandler *handler.InternshipHandler
	authMiddleware    *middleware.AuthMiddleware
	perimeterFilter   *middleware.PerimeterFilter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		provisionHandler:  params.ProvisionHandler,
		internshipHandler: params.InternshipHandler,
		authMiddleware:    params.AuthMiddleware,
		perimeterFilter:   params.PerimeterFilter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session endpoints. Refresh and logout stay public: refresh carries its
	// own proof, logout must work for broken sessions too.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Any authenticated role sees its own placements.
	internshipGroup := e.Group("/internships")
	internshipGroup.Use(r.authMiddleware.Authenticate)
	{
		internshipGroup.GET("", r.internshipHandler.ListMine)
	}

	// Admin provisioning
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.perimeterFilter.Gate(entity.RoleAdmin))
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/users", r.provisionHandler.CreateStaffUser)
	}

	// Teacher provisioning
	teacherGroup := e.Group("/teacher")
	teacherGroup.Use(r.perimeterFilter.Gate(entity.RoleTeacher))
	teacherGroup.Use(r.authMiddleware.Authenticate)
	teacherGroup.Use(r.authMiddleware.RequireRole(entity.RoleTeacher))
	{
		teacherGroup.POST("/students", r.provisionHandler.CreateStudent)
	}
}
