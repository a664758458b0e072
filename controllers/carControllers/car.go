package carController

import (
	"carhub/database"
	"carhub/middleware"
	"carhub/models"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const pageSize = 10

type ownerRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// carResponse replaces the stored addedBy reference with a small
// projection of the owning user.
type carResponse struct {
	models.Car
	AddedBy ownerRef `json:"addedBy"`
}

func toCarResponse(car models.Car) carResponse {
	return carResponse{
		Car: car,
		AddedBy: ownerRef{
			ID:   car.AddedByUser.ID,
			Name: car.AddedByUser.Name,
		},
	}
}

// CreateCar adds a car owned by the authenticated user
func CreateCar(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		Name     string `json:"name"`
		Model    string `json:"model"`
		Make     string `json:"make"`
		RegNo    string `json:"regNo"`
		Category string `json:"category"`
		AddedBy  uint   `json:"addedBy"`
		Image    string `json:"image"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// addedBy comes in the body but may only name the caller
	if reqData.AddedBy != userId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "addedBy must match the authenticated user!", nil)
	}

	// addedBy must reference an existing user
	if err := db.First(&models.User{}, reqData.AddedBy).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "addedBy must reference an existing user!", nil)
	}

	newCar := models.Car{
		Name:     reqData.Name,
		CarModel: reqData.Model,
		Make:     reqData.Make,
		RegNo:    reqData.RegNo,
		Category: reqData.Category,
		AddedBy:  reqData.AddedBy,
		Image:    reqData.Image,
	}

	if err := db.Create(&newCar).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add car!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Car added successfully.", newCar)
}

// GetCars returns a page of cars, optionally filtered by a case-insensitive
// keyword match on the name
func GetCars(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	page := c.QueryInt("pageNumber", 1)
	if page < 1 {
		page = 1
	}

	db := database.Database.Db

	var count int64
	countQuery := db.Model(&models.Car{})
	if keyword != "" {
		countQuery = countQuery.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}
	if err := countQuery.Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cars!", nil)
	}

	var cars []models.Car
	listQuery := db.Preload("AddedByUser", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name")
	})
	if keyword != "" {
		listQuery = listQuery.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}
	if err := listQuery.
		Limit(pageSize).
		Offset(pageSize * (page - 1)).
		Find(&cars).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cars!", nil)
	}

	pages := int(math.Ceil(float64(count) / float64(pageSize)))

	response := make([]carResponse, 0, len(cars))
	for _, car := range cars {
		response = append(response, toCarResponse(car))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cars fetched!", fiber.Map{
		"cars":  response,
		"page":  page,
		"pages": pages,
	})
}

// GetCarById returns a single car with its owner expanded to {id, name}
func GetCarById(c *fiber.Ctx) error {
	carId := c.Params("id")

	db := database.Database.Db

	var car models.Car
	if err := db.Preload("AddedByUser", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name")
	}).First(&car, "id = ?", carId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Car fetched!", toCarResponse(car))
}

// UpdateCar merges the supplied fields into an owned car. regNo and addedBy
// never change after creation.
func UpdateCar(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	carId := c.Params("id")

	reqData := new(struct {
		Name     string `json:"name"`
		Model    string `json:"model"`
		Make     string `json:"make"`
		Category string `json:"category"`
		Image    string `json:"image"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Existence check first: a missing car is a 404 before ownership is looked at
	var car models.Car
	if err := db.First(&car, "id = ?", carId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
	}

	if car.AddedBy != userId {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not Authorized", nil)
	}

	// Partial update: unset fields keep their stored value
	if reqData.Name != "" {
		car.Name = reqData.Name
	}
	if reqData.Model != "" {
		car.CarModel = reqData.Model
	}
	if reqData.Make != "" {
		car.Make = reqData.Make
	}
	if reqData.Category != "" {
		car.Category = reqData.Category
	}
	if reqData.Image != "" {
		car.Image = reqData.Image
	}

	if err := db.Save(&car).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update car!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Car updated successfully.", car)
}

// DeleteCar removes a car owned by the authenticated user
func DeleteCar(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	carId := c.Params("id")

	db := database.Database.Db

	var car models.Car
	if err := db.First(&car, "id = ?", carId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Car not found!", nil)
	}

	if car.AddedBy != userId {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not Authorized", nil)
	}

	if err := db.Delete(&car).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete car!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Car removed", nil)
}
