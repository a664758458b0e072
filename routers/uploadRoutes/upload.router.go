package uploadRoutes

import (
	uploadController "carhub/controllers/uploadControllers"
	"carhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes sets up the image upload route
func SetupUploadRoutes(app *fiber.App) {
	uploadGroup := app.Group("/api/upload")

	uploadGroup.Post("/", middleware.JWTMiddleware, uploadController.UploadImage)
}
