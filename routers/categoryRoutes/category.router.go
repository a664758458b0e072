package categoryRoutes

import (
	categoryController "carhub/controllers/categoryControllers"
	"carhub/middleware"
	categoryValidator "carhub/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up the category resource routes.
// Mutation past create is admin only.
func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/api/categories")

	categoryGroup.Get("/", categoryController.GetCategories)
	categoryGroup.Post("/", categoryValidator.CreateCategory(), middleware.JWTMiddleware, categoryController.CreateCategory)

	categoryGroup.Put("/:id", categoryValidator.UpdateCategory(), middleware.JWTMiddleware, middleware.AdminOnly, categoryController.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, categoryController.DeleteCategory)
}
