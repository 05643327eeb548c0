package routes

import (
	"net/http"

	"brightsmile/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the fulfillment server.
func RegisterRoutes(r *gin.Engine, webhook *handlers.WebhookHandler, appts *handlers.AppointmentsHandler) {
	r.Use(cors.Default())

	// The agent console can be pointed at either path.
	r.POST("/webhook", webhook.Handle)
	r.POST("/", webhook.Handle)

	r.StaticFile("/", "./static/index.html")

	RegisterHealthRoute(r)

	api := r.Group("/api")
	{
		api.GET("/appointments", appts.ListRecent)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Brightsmile"})
	})
}
