package carValidator

import (
	"carhub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var alphanumRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Helper to validate alphanumeric fields
func isAlphanumeric(value string) bool {
	return alphanumRegex.MatchString(value)
}

// CreateCar validator middleware
func CreateCar() fiber.Handler {
	return func(c *fiber.Ctx) error {
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

		errors := make(map[string]string)

		// Validate Name
		name := strings.TrimSpace(reqData.Name)
		if len(name) < 3 || len(name) > 30 {
			errors["name"] = "Name must be between 3 and 30 characters long!"
		}

		// Validate Model
		if reqData.Model == "" || !isAlphanumeric(reqData.Model) {
			errors["model"] = "Model is required and must be alphanumeric!"
		}

		// Validate Make
		if reqData.Make == "" {
			errors["make"] = "Make is required!"
		}

		// Validate Registration Number
		if reqData.RegNo == "" || !isAlphanumeric(reqData.RegNo) {
			errors["regNo"] = "Registration number is required and must be alphanumeric!"
		}

		// Validate Category
		if reqData.Category == "" {
			errors["category"] = "Category is required!"
		}

		// Validate AddedBy
		if reqData.AddedBy == 0 {
			errors["addedBy"] = "AddedBy is required!"
		}

		// Validate Image
		if reqData.Image == "" {
			errors["image"] = "Image is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCar", reqData)
		return c.Next()
	}
}

// UpdateCar validator middleware. Same field shapes as create, all optional.
func UpdateCar() fiber.Handler {
	return func(c *fiber.Ctx) error {
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

		errors := make(map[string]string)

		// Validate Name if provided
		if reqData.Name != "" {
			name := strings.TrimSpace(reqData.Name)
			if len(name) < 3 || len(name) > 30 {
				errors["name"] = "Name must be between 3 and 30 characters long!"
			}
		}

		// Validate Model if provided
		if reqData.Model != "" && !isAlphanumeric(reqData.Model) {
			errors["model"] = "Model must be alphanumeric!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCar", reqData)
		return c.Next()
	}
}
