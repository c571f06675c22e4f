package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope seragam: {success, data?, error?}

// ✅ Success Response tanpa custom code (default 200)
func JsonOK(c *fiber.Ctx, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func JsonWithCode(c *fiber.Ctx, code int, data interface{}) error {
	body := fiber.Map{"success": true}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, data)
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Internal server error"
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ✅ Khusus error validasi (validator.v10) — pesan per field
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	parts := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fieldErr.Field()+" wajib diisi")
		case "email":
			parts = append(parts, fieldErr.Field()+" bukan email valid")
		case "min":
			parts = append(parts, fieldErr.Field()+" minimal "+fieldErr.Param()+" karakter")
		case "oneof":
			parts = append(parts, fieldErr.Field()+" harus salah satu dari: "+fieldErr.Param())
		case "datetime":
			parts = append(parts, fieldErr.Field()+" harus format "+fieldErr.Param())
		case "url":
			parts = append(parts, fieldErr.Field()+" bukan URL valid")
		default:
			parts = append(parts, fieldErr.Field()+" tidak valid")
		}
	}
	return JsonError(c, fiber.StatusBadRequest, strings.Join(parts, "; "))
}

// FromFiberError mengubah error hasil service/Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten. Jika bukan *fiber.Error, fallback ke 500
// tanpa membocorkan detail storage ke client.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
