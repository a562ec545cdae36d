package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes() {
	gin.SetMode(s.ginMode)
	s.router = gin.New()

	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(s.corsMiddleware())
	s.router.Use(s.maxBodySizeMiddleware())

	// Public routes (no auth)
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/api/stats", s.getStatsData)

	// Model discovery stays open so clients can enumerate before authenticating
	s.router.GET("/v1/models", s.listModels)

	// Inference routes (auth required)
	api := s.router.Group("/v1")
	api.Use(s.authenticateClient)
	{
		api.POST("/chat/completions", s.chatCompletions)
		api.POST("/images/generations", s.imageGenerations)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
