package categoryController

import (
	"carhub/database"
	"carhub/middleware"
	"carhub/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory adds a category
func CreateCategory(c *fiber.Ctx) error {
	reqData := new(struct {
		Name string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	newCategory := models.Category{
		Name: reqData.Name,
	}

	if err := database.Database.Db.Create(&newCategory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully.", newCategory)
}

// GetCategories returns all categories
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", categories)
}

// UpdateCategory renames a category. Admin only, enforced in the router chain.
func UpdateCategory(c *fiber.Ctx) error {
	categoryId := c.Params("id")

	reqData := new(struct {
		Name string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, "id = ?", categoryId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if reqData.Name != "" {
		category.Name = reqData.Name
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully.", category)
}

// DeleteCategory removes a category. Admin only, enforced in the router chain.
func DeleteCategory(c *fiber.Ctx) error {
	categoryId := c.Params("id")

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, "id = ?", categoryId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if err := db.Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category removed", nil)
}
