package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalassist/internal/bootstrap"
	"legalassist/internal/transport/http/handler"
	"legalassist/internal/transport/http/middleware"
	"legalassist/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	cfg := app.Config
	gin.SetMode(cfg.App.GinMode)
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxBytes
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(app.Logger),
		middleware.Recovery(app.Logger),
	)
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "route not found")
	})

	checks := make([]handler.DependencyCheck, 0, len(app.HealthChecks))
	for _, hc := range app.HealthChecks {
		checks = append(checks, handler.DependencyCheck{Name: hc.Name, Check: hc.Check})
	}
	healthHandler := handler.NewHealthHandler(cfg.App.Name, cfg.App.Env, app.StartedAt, checks)
	chatHandler := handler.NewChatHandler(app.ChatService)
	documentHandler := handler.NewDocumentHandler(app.DocumentService, cfg.Upload.MaxBytes)
	knowledgeHandler := handler.NewKnowledgeHandler(app.KnowledgeService)
	authHandler := handler.NewAuthHandler(app.AuthService)
	requireAuth := middleware.AuthJWT(cfg.Auth.JWTSecret)

	api := router.Group("/api")
	api.GET("/health", healthHandler.Check)

	chatGroup := api.Group("/chat")
	chatGroup.GET("/welcome", chatHandler.Welcome)
	chatGroup.GET("/session", chatHandler.NewSession)
	chatGroup.GET("/:sessionId/messages", chatHandler.GetHistory)
	chatGroup.POST("/:sessionId/message", chatHandler.SendMessage)

	documentGroup := api.Group("/documents")
	documentGroup.POST("/upload", documentHandler.Upload)
	documentGroup.POST("/analyze", documentHandler.Analyze)
	documentGroup.GET("/:sessionId", documentHandler.List)
	documentGroup.GET("/:sessionId/:documentId", documentHandler.Get)

	knowledgeGroup := api.Group("/knowledge")
	knowledgeGroup.GET("", knowledgeHandler.List)
	knowledgeGroup.GET("/search", knowledgeHandler.Search)
	knowledgeGroup.POST("", requireAuth, knowledgeHandler.Create)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", requireAuth, authHandler.Me)

	return router
}
