package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, pageHandler *PageHandler, version string) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware: the profile and brand pages are fetched from browser
	// contexts on arbitrary origins
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler, pageHandler, version)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler, pageHandler *PageHandler, version string) {
	// Proxy endpoints consumed by the profile and brand pages
	api := r.Group("/api")
	{
		api.GET("/user/:userId", handler.GetUser)
		api.GET("/posts/:userId", handler.GetPosts)
		api.GET("/stories/:brandId", handler.GetStories)
		api.GET("/brand-posts/:brandId", handler.GetBrandPosts)
	}

	// Orchestrated page view state
	pages := r.Group("/pages")
	{
		pages.GET("/brand/:brandId", pageHandler.GetBrandPage)
		pages.GET("/profile/:userId", pageHandler.GetProfilePage)
	}

	// Health endpoint
	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Ohi Gateway",
			"version":     version,
			"description": "Public profile and brand viewer gateway for the Ohi app",
			"endpoints": map[string]string{
				"user":        "/api/user/<userId>",
				"posts":       "/api/posts/<userId>?brandStories=true",
				"stories":     "/api/stories/<brandId>?page=0&pageSize=20",
				"brand-posts":  "/api/brand-posts/<brandId>?page=0&pageSize=20",
				"brand-page":   "/pages/brand/<brandId>",
				"profile-page": "/pages/profile/<userId>?tab=brand",
				"health":       "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
