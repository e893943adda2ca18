package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/dental-records/internal/validation"
	apperrors "github.com/spec-kit/dental-records/pkg/util/errorutil"
)

// bind decodes the JSON body into dst and validates it.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	return validation.Struct(dst)
}

// idParam parses a positive numeric route parameter.
func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+name, map[string]any{name: "must be a positive integer"})
	}
	return id, nil
}

func data(v any) fiber.Map {
	return fiber.Map{"data": v}
}
