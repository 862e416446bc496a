package router

import (
	"github.com/gin-gonic/gin"
	"github.com/wednes/wednes-backend/config"
	"github.com/wednes/wednes-backend/internal/app/controller"
	"github.com/wednes/wednes-backend/internal/middleware"
)

type Router struct {
	marketController    *controller.MarketController
	schedulerController *controller.SchedulerController
	contentController   *controller.ContentController
	config              *config.Config
}

func NewRouter(
	marketController *controller.MarketController,
	schedulerController *controller.SchedulerController,
	contentController *controller.ContentController,
	cfg *config.Config,
) *Router {
	return &Router{
		marketController:    marketController,
		schedulerController: schedulerController,
		contentController:   contentController,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "WEDNES API is running",
		})
	})

	tools := router.Group("/tools")
	{
		tools.GET("/api", r.marketController.Search)
		tools.POST("/api", r.marketController.SearchPost)
		tools.GET("/export", r.marketController.Export)
	}

	api := router.Group("/api")
	{
		api.GET("/scheduler", r.schedulerController.Status)
		api.POST("/scheduler", r.schedulerController.Trigger)

		api.GET("/batch/collect", r.schedulerController.CollectStatus)
		api.POST("/batch/collect", r.schedulerController.Collect)

		api.GET("/force-update", r.contentController.ForceUpdate)

		v1 := api.Group("/v1")
		{
			v1.GET("/notices", r.contentController.GetNotices)
			v1.GET("/events", r.contentController.GetEvents)
			v1.GET("/alarms", r.contentController.GetAlarms)
			v1.GET("/calendar", r.contentController.GetCalendar)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
