// Package http wires handlers, middleware, and routes into the gin engine.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"studyhall/internal/infrastructure/auth"
	"studyhall/internal/interfaces/http/handlers"
	"studyhall/internal/interfaces/http/middleware"
	"studyhall/internal/shared/logger"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Mode         string
	JWTService   *auth.JWTService
	Redis        *redis.Client
	Logger       logger.Interface
	Auth         *handlers.AuthHandler
	Study        *handlers.StudyHandler
	Ticket       *handlers.TicketHandler
	Subscription *handlers.SubscriptionHandler
	Webhook      *handlers.WebhookHandler
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(cfg.Mode)

	router := gin.New()
	router.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestLogger(cfg.Logger),
		middleware.CORS(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	registerAuthRoutes(v1, cfg)
	registerStudyRoutes(v1, cfg)
	registerTicketRoutes(v1, cfg)
	registerSubscriptionRoutes(v1, cfg)

	// Stripe signs its requests itself; no bearer auth here.
	v1.POST("/webhooks/stripe", cfg.Webhook.HandleStripe)

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, cfg RouterConfig) {
	group := v1.Group("/auth")
	group.Use(middleware.IPRateLimit(cfg.Redis, cfg.Logger, 30, time.Minute))

	group.POST("/request-code", cfg.Auth.RequestCode)
	group.POST("/verify-code", cfg.Auth.VerifyCode)
	group.POST("/register", cfg.Auth.Register)
	group.POST("/login", cfg.Auth.Login)
}

func registerStudyRoutes(v1 *gin.RouterGroup, cfg RouterConfig) {
	group := v1.Group("")
	group.Use(middleware.Auth(cfg.JWTService))

	group.POST("/documents", cfg.Study.UploadDocument)
	group.GET("/documents", cfg.Study.ListDocuments)
	group.POST("/documents/:id/quiz", cfg.Study.GenerateQuiz)
	group.POST("/documents/:id/flashcards", cfg.Study.GenerateFlashcards)
	group.POST("/documents/:id/summary", cfg.Study.GenerateSummary)
	group.POST("/documents/:id/mindmap", cfg.Study.GenerateMindMap)
	group.GET("/artifacts", cfg.Study.ListArtifacts)
	group.GET("/artifacts/:id", cfg.Study.GetArtifact)
}

func registerTicketRoutes(v1 *gin.RouterGroup, cfg RouterConfig) {
	group := v1.Group("/tickets")
	group.Use(middleware.Auth(cfg.JWTService))

	group.POST("", cfg.Ticket.Create)
	group.GET("", cfg.Ticket.List)
	group.GET("/:id", cfg.Ticket.Get)
	group.POST("/:id/comments", cfg.Ticket.AddComment)
	group.POST("/:id/close", cfg.Ticket.Close)

	admin := v1.Group("/admin/tickets")
	admin.Use(middleware.Auth(cfg.JWTService), middleware.RequireAdmin())
	admin.GET("/events", cfg.Ticket.Events)
}

func registerSubscriptionRoutes(v1 *gin.RouterGroup, cfg RouterConfig) {
	group := v1.Group("/subscriptions")
	group.Use(middleware.Auth(cfg.JWTService))

	group.GET("/me", cfg.Subscription.Me)
}
