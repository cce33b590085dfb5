package main

import (
	"claimit/config"
	"claimit/database"
	authRoutes "claimit/routers/authRoutes"
	claimRoutes "claimit/routers/claimRoutes"
	disasterRoutes "claimit/routers/disasterRoutes"
	notificationRoutes "claimit/routers/notificationRoutes"
	userProfileRoutes "claimit/routers/userRoutes"
	"claimit/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve stored claim documents
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	claimRoutes.SetupClaimRoutes(app)
	disasterRoutes.SetupDisasterRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)

	// Periodic FEMA refresh; reads never trigger a fetch
	utils.InitializeDisasterScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
