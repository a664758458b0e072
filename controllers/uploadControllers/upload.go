package uploadController

import (
	"carhub/config"
	"carhub/middleware"
	"carhub/utils"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage stores a multipart image and returns its public URL
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Images only!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded!", fiber.Map{
		"image": utils.GetFileURL(filename),
	})
}
