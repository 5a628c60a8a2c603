package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trifectawealth/portal/internal/handlers"
	"github.com/trifectawealth/portal/internal/middleware"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Alerts       *handlers.AlertHandler
	Appointments *handlers.AppointmentHandler
	Clients      *handlers.ClientHandler
	Documents    *handlers.DocumentHandler
	Messages     *handlers.MessageHandler
	ActionItems  *handlers.ActionItemHandler
	Trifecta     *handlers.TrifectaHandler
	Planning     *handlers.PlanningHandler
	Resources    *handlers.ResourceHandler
}

// Setup registers every API route on the router. Mutating routes sit behind
// the rate limiter.
func Setup(router *gin.Engine, h Handlers, rateLimiter *middleware.RateLimiter) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := rateLimiter.Middleware()

	alertGroup := router.Group("/api/alerts")
	{
		alertGroup.GET("/client/:id", h.Alerts.ListByClient)
		alertGroup.GET("/client/:id/active", h.Alerts.ListActive)
		alertGroup.GET("/:id", h.Alerts.Get)
		alertGroup.POST("", limited, h.Alerts.Create)
		alertGroup.PUT("/:id", limited, h.Alerts.Update)
		alertGroup.DELETE("/:id", limited, h.Alerts.Delete)
		alertGroup.POST("/:id/snooze", limited, h.Alerts.Snooze)
		alertGroup.POST("/:id/activate", limited, h.Alerts.Activate)
	}

	apptGroup := router.Group("/api/appointments")
	{
		apptGroup.GET("/available", h.Appointments.ListAvailable)
		apptGroup.GET("/client/:id", h.Appointments.ListByClient)
		apptGroup.GET("/types", h.Appointments.Types)
		apptGroup.GET("/advisors", h.Appointments.Advisors)
		apptGroup.GET("/:id", h.Appointments.Get)
		apptGroup.POST("", limited, h.Appointments.Book)
		apptGroup.PUT("/:id", limited, h.Appointments.Update)
		apptGroup.POST("/:id/cancel", limited, h.Appointments.Cancel)
		apptGroup.DELETE("/:id", limited, h.Appointments.Delete)
	}

	clientGroup := router.Group("/api/clients")
	{
		clientGroup.GET("", h.Clients.List)
		clientGroup.GET("/:id", h.Clients.Get)
		clientGroup.POST("", limited, h.Clients.Create)
		clientGroup.PUT("/:id", limited, h.Clients.Update)
		clientGroup.DELETE("/:id", limited, h.Clients.Delete)
	}

	docGroup := router.Group("/api/documents")
	{
		docGroup.GET("", h.Documents.List)
		docGroup.GET("/:id", h.Documents.Get)
		docGroup.POST("", limited, h.Documents.Create)
		docGroup.PUT("/:id", limited, h.Documents.Update)
		docGroup.DELETE("/:id", limited, h.Documents.Delete)
	}

	msgGroup := router.Group("/api/messages")
	{
		msgGroup.GET("/threads", h.Messages.Threads)
		msgGroup.GET("/threads/:id", h.Messages.ListByThread)
		msgGroup.GET("/:id", h.Messages.Get)
		msgGroup.POST("", limited, h.Messages.Send)
		msgGroup.POST("/:id/read", limited, h.Messages.MarkRead)
	}

	itemGroup := router.Group("/api/action-items")
	{
		itemGroup.GET("", h.ActionItems.List)
		itemGroup.GET("/:id", h.ActionItems.Get)
		itemGroup.POST("", limited, h.ActionItems.Create)
		itemGroup.PUT("/:id", limited, h.ActionItems.Update)
		itemGroup.DELETE("/:id", limited, h.ActionItems.Delete)
	}

	pillarGroup := router.Group("/api/trifecta")
	{
		pillarGroup.GET("", h.Trifecta.List)
		pillarGroup.GET("/:id", h.Trifecta.Get)
		pillarGroup.POST("", limited, h.Trifecta.Create)
		pillarGroup.PUT("/:id", limited, h.Trifecta.Update)
		pillarGroup.DELETE("/:id", limited, h.Trifecta.Delete)
	}

	resourceGroup := router.Group("/api/resources")
	{
		resourceGroup.GET("", h.Resources.List)
		resourceGroup.GET("/categories", h.Resources.Categories)
		resourceGroup.GET("/difficulties", h.Resources.Difficulties)
		resourceGroup.GET("/:id", h.Resources.Get)
		resourceGroup.POST("", limited, h.Resources.Create)
		resourceGroup.PUT("/:id", limited, h.Resources.Update)
		resourceGroup.DELETE("/:id", limited, h.Resources.Delete)
	}

	planGroup := router.Group("/api/planning")
	{
		planGroup.POST("/tax-savings", h.Planning.TaxSavings)
		planGroup.POST("/growth", h.Planning.Growth)
	}
}
