package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10) → 422 + map field → pesan
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], pesanValidasi(fe))
	}
	return JsonValidationError(c, fieldErrors)
}

// pesan kustom per tag, selaras dengan form admin
func pesanValidasi(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "uuid":
		return "harus UUID valid"
	case "oneof":
		return "nilai tidak valid"
	case "max":
		return "terlalu panjang"
	case "min":
		return "terlalu pendek"
	case "email":
		return "format email tidak valid"
	case "url":
		return "format URL tidak valid"
	default:
		return fe.Tag()
	}
}
