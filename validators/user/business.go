package userValidator

import (
	"carhub/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// UpdateBusiness validator middleware
func UpdateBusiness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name"`
			Logo string `json:"logo"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) == 0 {
			errors["name"] = "Business name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBusiness", reqData)
		return c.Next()
	}
}

// AddLocation validator middleware
func AddLocation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StoreName            string `json:"Store_name"`
			Email                string `json:"email"`
			CustomerServiceEmail string `json:"Customer_service_email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.StoreName)) == 0 {
			errors["Store_name"] = "Store name is required!"
		}

		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if reqData.CustomerServiceEmail != "" && !isValidEmail(reqData.CustomerServiceEmail) {
			errors["Customer_service_email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// SubmitReview validates a public review funnel submission.
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Review  string `json:"review"`
			Comment string `json:"comment"`
			Name    string `json:"name"`
			Email   string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// A submission must carry something: a review, a comment or a name
		if reqData.Review == "" && reqData.Comment == "" && reqData.Name == "" {
			errors["review"] = "Review, comment or name is required!"
		}

		if reqData.Email != "" && !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
