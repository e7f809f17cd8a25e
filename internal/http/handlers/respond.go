package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "libreria/internal/log"
	"libreria/internal/services"
)

// fail maps a service error onto the wire: NotFound → 404, a rejected stock
// state → 400, anything else → 500 with the detail kept out of the body.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case services.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": err.Error()})
	case errors.Is(err, services.ErrStockNegativo):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	default:
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "error interno"})
	}
}
