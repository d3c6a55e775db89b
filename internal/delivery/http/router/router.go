// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pressroom/internal/delivery/http/middleware"
	"pressroom/internal/delivery/http/router/handler"
	"pressroom/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	BlogHandler         *handler.BlogHandler
	StoryHandler        *handler.StoryHandler
	WaitlistHandler     *handler.WaitlistHandler
	AdminHandler        *handler.AdminHandler
	NotificationHandler *handler.NotificationHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	UploadHandler       *handler.UploadHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authn := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.POST("/forgot-password", r.params.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.params.AuthHandler.ResetPassword)

		authGroup.GET("/me", r.params.AuthHandler.Me, authn.Authenticate)
		authGroup.PUT("/profile", r.params.AuthHandler.UpdateProfile, authn.Authenticate)
		authGroup.PUT("/change-password", r.params.AuthHandler.ChangePassword, authn.Authenticate)
	}

	// Blog routes: reads are public with optional identity for draft
	// visibility, mutations require the manageBlogs permission.
	blogGroup := api.Group("/blogs")
	{
		blogGroup.GET("", r.params.BlogHandler.List, authn.OptionalAuthenticate)
		blogGroup.GET("/slug/:slug", r.params.BlogHandler.GetBySlug)
		blogGroup.GET("/:id", r.params.BlogHandler.Get,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageBlogs))

		blogGroup.POST("", r.params.BlogHandler.Create,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageBlogs))
		blogGroup.PUT("/:id", r.params.BlogHandler.Update,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageBlogs))
		blogGroup.DELETE("/:id", r.params.BlogHandler.Delete,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageBlogs))
	}

	// Story routes: the public submits and reads published stories,
	// moderation requires the manageStories permission.
	storyGroup := api.Group("/stories")
	{
		storyGroup.POST("", r.params.StoryHandler.Submit)
		storyGroup.GET("/:id", r.params.StoryHandler.Get, authn.OptionalAuthenticate)

		storyGroup.GET("", r.params.StoryHandler.List,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageStories))
		storyGroup.PUT("/:id/status", r.params.StoryHandler.Review,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageStories))
		storyGroup.PUT("/:id", r.params.StoryHandler.Update,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageStories))
		storyGroup.DELETE("/:id", r.params.StoryHandler.Delete,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageStories))
	}

	// Waitlist routes: signup is public, management requires the
	// manageWaitlist permission.
	waitlistGroup := api.Group("/waitlist")
	{
		waitlistGroup.POST("", r.params.WaitlistHandler.Signup)

		waitlistGroup.GET("", r.params.WaitlistHandler.List,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageWaitlist))
		waitlistGroup.GET("/:id", r.params.WaitlistHandler.Get,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageWaitlist))
		waitlistGroup.PUT("/:id/status", r.params.WaitlistHandler.AdvanceStatus,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageWaitlist))
		waitlistGroup.DELETE("/:id", r.params.WaitlistHandler.Delete,
			authn.Authenticate, authn.RequirePermission(entity.PermissionManageWaitlist))
	}

	// Admin account management, super-admin territory.
	adminGroup := api.Group("/admins",
		authn.Authenticate, authn.RequirePermission(entity.PermissionManageAdmins))
	{
		adminGroup.GET("", r.params.AdminHandler.List)
		adminGroup.POST("", r.params.AdminHandler.Create)
		adminGroup.GET("/:id", r.params.AdminHandler.Get)
		adminGroup.PUT("/:id", r.params.AdminHandler.Update)
		adminGroup.DELETE("/:id", r.params.AdminHandler.Delete)
	}

	// Notifications are scoped to the authenticated admin.
	notificationGroup := api.Group("/notifications", authn.Authenticate)
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.PUT("/read-all", r.params.NotificationHandler.MarkAllRead)
		notificationGroup.PUT("/:id/read", r.params.NotificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.params.NotificationHandler.Delete)
	}

	// Reporting endpoints require the viewAnalytics permission.
	analyticsGroup := api.Group("/analytics",
		authn.Authenticate, authn.RequirePermission(entity.PermissionViewAnalytics))
	{
		analyticsGroup.GET("/overview", r.params.AnalyticsHandler.Overview)
		analyticsGroup.GET("/stories", r.params.AnalyticsHandler.Stories)
		analyticsGroup.GET("/blogs", r.params.AnalyticsHandler.Blogs)
	}

	// Image uploads are available to any authenticated admin.
	uploadGroup := api.Group("/upload", authn.Authenticate)
	{
		uploadGroup.POST("/image", r.params.UploadHandler.UploadImage)
		uploadGroup.DELETE("/image/:key", r.params.UploadHandler.DeleteImage)
	}
}
