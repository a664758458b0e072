package userRoutes

import (
	authController "carhub/controllers/authControllers"
	userController "carhub/controllers/userControllers"
	"carhub/middleware"
	authValidator "carhub/validators/auth"
	userValidator "carhub/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up registration, login, profile and business routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Post("/", authValidator.Register(), authController.Register)
	userGroup.Post("/login", authValidator.Login(), authController.Login)

	userGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	userGroup.Put("/profile", authValidator.UpdateProfile(), middleware.JWTMiddleware, authController.UpdateProfile)

	userGroup.Put("/business", userValidator.UpdateBusiness(), middleware.JWTMiddleware, userController.UpdateBusiness)
	userGroup.Post("/business/locations", userValidator.AddLocation(), middleware.JWTMiddleware, userController.AddLocation)

	// Public review funnel on store locations
	locationGroup := app.Group("/api/locations")
	locationGroup.Post("/:id/reviews", userValidator.SubmitReview(), userController.SubmitLocationReview)
	locationGroup.Get("/:id/reviews", userController.GetLocationReviews)
}
