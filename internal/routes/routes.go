package routes

import (
	"task-reminder-api/internal/handlers"
	"task-reminder-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Reminder API is running",
		})
	})

	// Public routes (no authentication required)
	ginRouter.POST("/register", handlers.Register)
	ginRouter.POST("/login", handlers.Login)

	// Protected routes (authentication required)
	protectedRoutes := ginRouter.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Task endpoints
		protectedRoutes.POST("/tasks", handlers.CreateTask)
		protectedRoutes.GET("/tasks", handlers.GetTasks)
		protectedRoutes.PUT("/tasks/:id", handlers.UpdateTask)
		protectedRoutes.DELETE("/tasks/:id", handlers.DeleteTask)
		// SubTask endpoints
		protectedRoutes.POST("/subtasks", handlers.CreateSubTask)
		protectedRoutes.GET("/subtasks", handlers.GetSubTasks)
		protectedRoutes.PUT("/subtasks/:id", handlers.UpdateSubTask)
		protectedRoutes.DELETE("/subtasks/:id", handlers.DeleteSubTask)
	}

	return ginRouter
}
