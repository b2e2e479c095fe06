package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Ali-ahsan35/vacation-rental-A7/config"
	"github.com/Ali-ahsan35/vacation-rental-A7/database"
	"github.com/Ali-ahsan35/vacation-rental-A7/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	cfg := config.LoadConfig()

	// Connect to database
	database.ConnectDatabase()
	defer database.DB.Close()

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Uploaded property images
	router.Static("/media", cfg.MediaDir)

	// Setup routes
	routes.SetupRoutes(router)

	// Start server
	router.Run(":" + cfg.ServerPort)
}
