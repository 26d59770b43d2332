package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Routable interface {
	RegisterRoutes(r fiber.Router)
}

// RegisterAPI mounts every handler under /api behind guards, applied in order.
func RegisterAPI(app *fiber.App, guards []fiber.Handler, handlers ...Routable) {
	api := app.Group("/api", guards...)
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
}

func paramID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
