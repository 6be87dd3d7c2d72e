package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slight125/FarmFlow/assistant"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/utils"
)

type chatPayload struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// SetupChatRoutes wires the assistant endpoint. The responder is built once
// at startup so the model/rule decision never changes mid-flight.
func SetupChatRoutes(app *fiber.App, responder assistant.Responder) {
	chat := app.Group("/chat", middleware.JWTMiddleware)
	chat.Post("/", func(c *fiber.Ctx) error {
		var body chatPayload
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
		}
		if err := utils.ValidateStruct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		resp := responder.Respond(c.UserContext(), requestScope(c), time.Now(), body.Message)
		return c.JSON(resp)
	})
}
