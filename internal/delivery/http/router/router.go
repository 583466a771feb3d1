// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hostelhub/internal/delivery/http/middleware"
	"hostelhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	VerificationHandler *handler.VerificationHandler
	UserHandler         *handler.UserHandler
	HostelHandler       *handler.HostelHandler
	BookingHandler      *handler.BookingHandler
	FeedbackHandler     *handler.FeedbackHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	verificationHandler *handler.VerificationHandler
	userHandler         *handler.UserHandler
	hostelHandler       *handler.HostelHandler
	bookingHandler      *handler.BookingHandler
	feedbackHandler     *handler.FeedbackHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		verificationHandler: params.VerificationHandler,
		userHandler:         params.UserHandler,
		hostelHandler:       params.HostelHandler,
		bookingHandler:      params.BookingHandler,
		feedbackHandler:     params.FeedbackHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Email verification routes, used before registration.
	verificationGroup := e.Group("/verification")
	{
		verificationGroup.POST("/send-code", r.verificationHandler.SendCode)
		verificationGroup.POST("/verify-code", r.verificationHandler.VerifyCode)
	}

	// Auth routes, one registration and login surface per actor.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/user/register", r.userHandler.Register)
		authGroup.POST("/user/login", r.userHandler.Login)
		authGroup.POST("/user/reset-password", r.userHandler.ResetPassword)

		authGroup.POST("/hostel/register", r.hostelHandler.Register)
		authGroup.POST("/hostel/login", r.hostelHandler.Login)
		authGroup.POST("/hostel/reset-password", r.hostelHandler.ResetPassword)

		authGroup.POST("/admin/login", r.adminHandler.Login)
	}

	// User-facing catalogue: verified hostels only.
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/hostels", r.userHandler.ListHostels)
		userGroup.GET("/hostels/:id/rooms", r.userHandler.HostelRooms)
	}

	// Booking lifecycle routes.
	bookingGroup := e.Group("/bookings")
	bookingGroup.Use(r.authMiddleware.Authenticate)
	{
		bookingGroup.POST("", r.bookingHandler.Create)
		bookingGroup.GET("/:id", r.bookingHandler.Get)
		bookingGroup.GET("/:id/qr", r.bookingHandler.ConfirmationQR)
		bookingGroup.GET("/user/:userId", r.bookingHandler.ListByUser)
		bookingGroup.GET("/hostel/:hostelId", r.bookingHandler.ListByHostel)
		bookingGroup.PUT("/:id/status", r.bookingHandler.UpdateStatus)
		bookingGroup.DELETE("/:id", r.bookingHandler.Delete)
	}

	// Hostel description sub-resource, published by operators and readable
	// by any authenticated caller.
	hostelGroup := e.Group("/hostels")
	hostelGroup.Use(r.authMiddleware.Authenticate)
	{
		hostelGroup.POST("/:id/description", r.hostelHandler.AddDescription)
		hostelGroup.GET("/:id/description", r.hostelHandler.GetDescription)
	}

	// Guest feedback routes.
	feedbackGroup := e.Group("/feedback")
	feedbackGroup.Use(r.authMiddleware.Authenticate)
	{
		feedbackGroup.POST("", r.feedbackHandler.Post)
		feedbackGroup.GET("", r.feedbackHandler.List)
		feedbackGroup.GET("/hostel/:hostelId", r.feedbackHandler.ListByHostel)
		feedbackGroup.GET("/count", r.feedbackHandler.Count)
		feedbackGroup.GET("/average/:hostelId", r.feedbackHandler.AverageRating)
	}

	// Admin routes require authentication and the "admin" role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.PUT("/hostels/status", r.adminHandler.SetHostelStatus)
		adminGroup.GET("/hostels", r.adminHandler.ListHostels)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/bookings", r.bookingHandler.List)
		adminGroup.GET("/counts", r.adminHandler.Counts)
	}
}
