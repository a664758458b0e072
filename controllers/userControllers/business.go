package userController

import (
	"carhub/database"
	"carhub/middleware"
	"carhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateBusiness creates or updates the business profile of the
// authenticated user
func UpdateBusiness(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		Name string `json:"name"`
		Logo string `json:"logo"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var business models.Business
	err := db.Where("user_id = ?", userId).First(&business).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update business profile!", nil)
		}
		business = models.Business{
			UserID: userId,
			Name:   reqData.Name,
			Logo:   reqData.Logo,
		}
		if err := db.Create(&business).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update business profile!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Business profile created.", business)
	}

	if reqData.Name != "" {
		business.Name = reqData.Name
	}
	if reqData.Logo != "" {
		business.Logo = reqData.Logo
	}

	if err := db.Save(&business).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update business profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Business profile updated.", business)
}

// AddLocation adds a store location to the authenticated user's business
func AddLocation(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		StoreName            string   `json:"Store_name"`
		Rating               float32  `json:"rating"`
		StoreAddress         string   `json:"Store_address"`
		Email                string   `json:"email"`
		Website              string   `json:"website"`
		PageContent          string   `json:"page_content"`
		DefaultMessage       string   `json:"Default_message"`
		CustomerServiceEmail string   `json:"Customer_service_email"`
		ReviewLinks          []string `json:"Review_links"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var business models.Business
	if err := db.Where("user_id = ?", userId).First(&business).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Business profile not found!", nil)
	}

	location := models.Location{
		BusinessID:           business.ID,
		StoreName:            reqData.StoreName,
		Rating:               reqData.Rating,
		StoreAddress:         reqData.StoreAddress,
		Email:                reqData.Email,
		Website:              reqData.Website,
		PageContent:          reqData.PageContent,
		DefaultMessage:       reqData.DefaultMessage,
		CustomerServiceEmail: reqData.CustomerServiceEmail,
	}
	for _, link := range reqData.ReviewLinks {
		location.ReviewLinks = append(location.ReviewLinks, models.ReviewLink{URL: link})
	}

	if err := db.Create(&location).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add location!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Location added successfully.", location)
}

// SubmitLocationReview records a review left through the public funnel page
// of a store location. No authentication: the reviewer is a customer.
func SubmitLocationReview(c *fiber.Ctx) error {
	locationId := c.Params("id")

	reqData := new(struct {
		ReviewTitle   string `json:"Review_title"`
		ReviewLink    string `json:"Review_link"`
		UnhappyAction string `json:"Unhappy_action"`
		Icon          string `json:"Icon"`
		Review        string `json:"review"`
		Name          string `json:"name"`
		Phone         string `json:"phone"`
		Email         string `json:"email"`
		Comment       string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if location exists
	var location models.Location
	if err := db.First(&location, "id = ?", locationId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}

	review := models.Review{
		LocationID:    location.ID,
		ReviewTitle:   reqData.ReviewTitle,
		ReviewLink:    reqData.ReviewLink,
		UnhappyAction: reqData.UnhappyAction,
		Icon:          reqData.Icon,
		Review:        reqData.Review,
		Name:          reqData.Name,
		Phone:         reqData.Phone,
		Email:         reqData.Email,
		Comment:       reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully.", review)
}

// GetLocationReviews returns reviews for a location, newest first
func GetLocationReviews(c *fiber.Ctx) error {
	locationId := c.Params("id")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var location models.Location
	if err := db.First(&location, "id = ?", locationId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Location not found!", nil)
	}

	var total int64
	db.Model(&models.Review{}).Where("location_id = ?", location.ID).Count(&total)

	var reviews []models.Review
	if err := db.Where("location_id = ?", location.ID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": reviews,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
