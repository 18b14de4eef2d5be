package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sbksba/weektask/api/handlers"
)

// NewRouter wires the task endpoints onto a gin engine. The browser UI
// is served elsewhere, so CORS allows any origin.
func NewRouter(h *handlers.TaskHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "PATCH"},
		AllowHeaders:    []string{"Content-Type", "Accept"},
	}))

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/tasks", h.ListTasks)
		api.POST("/tasks", h.CreateTask)
		api.DELETE("/tasks/:id", h.DeleteTask)
		api.PATCH("/tasks/rollover", h.RolloverTasks)
	}

	return r
}
