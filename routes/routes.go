package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fuadnh/catatan-api/config"
	"github.com/fuadnh/catatan-api/controllers"
	"github.com/fuadnh/catatan-api/middleware"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, cfg *config.Config) *gin.Engine {
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.DBMiddleware(db))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.POST("/notes/auth", controllers.ExchangeToken(cfg))

	notes := api.Group("/notes")
	{
		notes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		notes.GET("", controllers.GetNotes)
		notes.POST("", controllers.CreateOrUpdateNote)
		notes.PUT("", controllers.UpdateNote)
		notes.DELETE("", controllers.DeleteNote)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		// Preflight tanpa header Origin tidak ditangani middleware CORS,
		// jadi dijawab di sini.
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	return r
}
