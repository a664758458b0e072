package carRoutes

import (
	carController "carhub/controllers/carControllers"
	"carhub/middleware"
	carValidator "carhub/validators/car"

	"github.com/gofiber/fiber/v2"
)

// SetupCarRoutes sets up the car resource routes
func SetupCarRoutes(app *fiber.App) {
	carGroup := app.Group("/api/cars")

	carGroup.Get("/", carController.GetCars)
	carGroup.Post("/", carValidator.CreateCar(), middleware.JWTMiddleware, carController.CreateCar)

	carGroup.Get("/:id", carController.GetCarById)
	carGroup.Put("/:id", carValidator.UpdateCar(), middleware.JWTMiddleware, carController.UpdateCar)
	carGroup.Delete("/:id", middleware.JWTMiddleware, carController.DeleteCar)
}
