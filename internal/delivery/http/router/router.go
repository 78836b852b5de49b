// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"critique/internal/delivery/http/middleware"
	"critique/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ItemHandler       *handler.ItemHandler
	ReviewHandler     *handler.ReviewHandler
	CommentHandler    *handler.CommentHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	itemHandler       *handler.ItemHandler
	reviewHandler     *handler.ReviewHandler
	commentHandler    *handler.CommentHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		itemHandler:       params.ItemHandler,
		reviewHandler:     params.ReviewHandler,
		commentHandler:    params.CommentHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metricsMiddleware.Handler())

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Account routes that require authentication
	usersGroup := e.Group("/users")
	usersGroup.Use(authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetProfile)
	}

	// Catalog routes; reads are public, writes require authentication
	itemsGroup := e.Group("/items")
	{
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.GET("/:id", r.itemHandler.GetItem)
		itemsGroup.POST("", r.itemHandler.CreateItem, authenticate)
		itemsGroup.PUT("/:id", r.itemHandler.UpdateItem, authenticate)
		itemsGroup.DELETE("/:id", r.itemHandler.DeleteItem, authenticate)
	}

	// Review routes; reads are public, writes require authentication
	reviewsGroup := e.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewsGroup.POST("", r.reviewHandler.CreateReview, authenticate)
		reviewsGroup.PUT("/:id", r.reviewHandler.UpdateReview, authenticate)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview, authenticate)

		// Comments nested under their review
		reviewsGroup.GET("/:id/comments", r.commentHandler.ListReviewComments)
		reviewsGroup.POST("/:id/comments", r.commentHandler.CreateComment, authenticate)
	}

	// Comment mutation routes
	commentsGroup := e.Group("/comments")
	commentsGroup.Use(authenticate)
	{
		commentsGroup.PUT("/:id", r.commentHandler.UpdateComment)
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment)
	}
}
