package errors

import (
	fiber "github.com/gofiber/fiber/v2"
)

// FiberErrorHandler converts errors bubbling out of handlers into JSON
// responses. Wire it into fiber.Config.ErrorHandler so handlers can simply
// return orchestrator errors.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	// fiber's own errors (bad routes, body limits) keep their status
	if fiberErr, ok := err.(*fiber.Error); ok {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	code := GetCode(err)
	payload := fiber.Map{
		"error": GetMessage(err),
		"code":  code.String(),
	}
	if meta := GetMeta(err); len(meta) > 0 {
		payload["meta"] = meta
	}

	return c.Status(code.HTTPStatus()).JSON(payload)
}
