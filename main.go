package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tomatoplanet/leads-go/config"
	"github.com/tomatoplanet/leads-go/db"
	"github.com/tomatoplanet/leads-go/middleware"
	"github.com/tomatoplanet/leads-go/routes"
	"github.com/tomatoplanet/leads-go/utils"
)

// @title Tomato Planet Leads API
// @version 1.0
// @description Lead-capture backend for the Tomato Planet marketing site.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()
	utils.InitLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate
	db.Init()

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, rdb)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
