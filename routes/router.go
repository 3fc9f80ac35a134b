package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tomatoplanet/leads-go/config"
	_ "github.com/tomatoplanet/leads-go/docs"
	"github.com/tomatoplanet/leads-go/handlers"
	"github.com/tomatoplanet/leads-go/middleware"
	"github.com/tomatoplanet/leads-go/repositories"
	"github.com/tomatoplanet/leads-go/services"
)

func RegisterRoutes(r *gin.Engine, rdb *redis.Client) {

	// init
	repos_instance := repositories.New()

	var notifier services.Notifier = services.NoopNotifier{}
	if config.SendGridAPIKey != "" {
		notifier = services.NewSendGridNotifier(
			config.SendGridAPIKey,
			config.MailFrom,
			config.MailFromName,
			config.MailNotifyTo,
		)
	}

	services_instance := services.New(repos_instance, notifier)
	handlers_instance := handlers.New(services_instance)

	// setup
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		submitLimit := middleware.RateLimit(rdb, config.SubmitRateLimit, config.SubmitRateWindow)
		applications := api.Group("/applications")
		{
			applications.POST("/brand", submitLimit, handlers_instance.Application.SubmitBrand)
			applications.POST("/creator", submitLimit, handlers_instance.Application.SubmitCreator)
			applications.POST("/contact", submitLimit, handlers_instance.Application.SubmitContact)
		}

		api.GET("/schemas/:kind", handlers_instance.Schema.GetSchema)

		admin := api.Group("/admin")
		{
			admin.POST("/login", handlers_instance.Admin.Login)

			auth := admin.Group("/")
			auth.Use(middleware.JWTAuthMiddleware())
			{
				auth.GET("/applications/brand", handlers_instance.Admin.ListBrand)
				auth.GET("/applications/creator", handlers_instance.Admin.ListCreator)
				auth.GET("/applications/contact", handlers_instance.Admin.ListContact)
				auth.GET("/applications/stats", handlers_instance.Admin.Stats)
				auth.GET("/feed", handlers_instance.Feed.Stream)
			}
		}
	}
}
