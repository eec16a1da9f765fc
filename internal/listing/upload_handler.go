package listing

import (
	"strings"

	"github.com/roomly/api/internal/response"
	"github.com/roomly/api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

// UploadImageHandler stores a listing photo and returns its public URL.
// The URL is then attached to a listing via the images field.
func UploadImageHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	if file.Size > maxImageSize {
		return response.BadRequest(c, "File too large", map[string]interface{}{
			"max_size_mb":  maxImageSize / (1024 * 1024),
			"file_size_mb": file.Size / (1024 * 1024),
		})
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return response.BadRequest(c, "Only image uploads are allowed", nil)
	}

	url, err := utils.UploadFile(file)
	if err != nil {
		return response.InternalError(c, "Failed to upload file: "+err.Error())
	}

	return response.Created(c, fiber.Map{"url": url}, "File uploaded successfully")
}
