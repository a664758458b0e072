package main

import (
	"carhub/config"
	"carhub/database"
	carRoutes "carhub/routers/carRoutes"
	categoryRoutes "carhub/routers/categoryRoutes"
	uploadRoutes "carhub/routers/uploadRoutes"
	userRoutes "carhub/routers/userRoutes"
	"carhub/utils"
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
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded images
	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running....")
	})

	userRoutes.SetupUserRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)
	carRoutes.SetupCarRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)

	utils.StartUploadCleanup()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
