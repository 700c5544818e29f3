package oss

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.HasPrefix(ct, "multipart/form-data")
}

var defaultImageFields = []string{"image", "file", "photo", "thumbnail", "signature"}

// GetImageFile fetches the first present file field from the form.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if len(fieldNames) == 0 {
		fieldNames = defaultImageFields
	}
	for _, name := range fieldNames {
		if fh, err := c.FormFile(name); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, "File not found in form")
}
