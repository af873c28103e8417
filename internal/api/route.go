package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/zodyking/textnow-gateway/internal/api/v1"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/v1/conversations", handler.Conversations)
	app.Post("/v1/messages", handler.Messages)
	app.Post("/v1/messages/send", handler.SendText)
	app.Post("/v1/messages/send-media", handler.SendMedia)
	app.Post("/v1/messages/send-voice", handler.SendVoice)

	app.Get("/v1/media", handler.Media)
	app.Post("/v1/voice/synthesize", handler.Synthesize)

	app.Post("/v1/users/signup", handler.SignUp)
	app.Post("/v1/users/login", handler.LogIn)
	app.Post("/v1/users/get", handler.GetUser)
	app.Post("/v1/users/update", handler.UpdateUser)
}
