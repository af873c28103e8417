package main

import (
	"context"

	playvalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zodyking/textnow-gateway/internal/api"
	"github.com/zodyking/textnow-gateway/internal/api/middleware"
	"github.com/zodyking/textnow-gateway/internal/api/validator"
	v1 "github.com/zodyking/textnow-gateway/internal/api/v1"
	"github.com/zodyking/textnow-gateway/internal/config"
	"github.com/zodyking/textnow-gateway/internal/metrics"
	"github.com/zodyking/textnow-gateway/internal/model"
	"github.com/zodyking/textnow-gateway/internal/repository"
	"github.com/zodyking/textnow-gateway/internal/service"
	"github.com/zodyking/textnow-gateway/pkg/httpclient"
	"github.com/zodyking/textnow-gateway/pkg/sqlite"
	"github.com/zodyking/textnow-gateway/pkg/textnow"
	"github.com/zodyking/textnow-gateway/pkg/tts"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewHTTPClient,
			NewTextNowClient,
			NewSynthesizer,
			NewFiberApp,

			metrics.NewMetrics,
			NewXValidator,

			repository.NewUserRepository,

			NewConversationService,
			NewMessageService,
			NewSendService,
			NewMediaService,
			NewSynthesisService,
			NewUserService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := sqlite.NewConnection(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, err
	}

	return db, nil
}

func NewHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Upstream.Timeout)
}

func NewTextNowClient(cfg *config.Config, client httpclient.HTTPClient, m *metrics.Metrics) textnow.Client {
	return metrics.NewInstrumentedClient(textnow.NewClient(cfg.Upstream, client), m)
}

func NewSynthesizer(cfg *config.Config, client httpclient.HTTPClient, m *metrics.Metrics) tts.Synthesizer {
	var synthesizer tts.Synthesizer
	if cfg.TTS.Provider == "openai" {
		synthesizer = tts.NewOpenAISynthesizer(cfg.TTS.OpenAI)
	} else {
		synthesizer = tts.NewGeminiSynthesizer(cfg.TTS.Gemini, client)
	}

	return metrics.NewInstrumentedSynthesizer(synthesizer, m)
}

func NewXValidator() validator.IXValidator {
	return validator.NewXValidator(playvalidator.New())
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		BodyLimit:    32 * 1024 * 1024,
	})
}

func NewConversationService(client textnow.Client, logger *zap.Logger) service.ConversationService {
	return service.NewConversationService(client, logger)
}

func NewMessageService(client textnow.Client, logger *zap.Logger) service.MessageService {
	return service.NewMessageService(client, logger)
}

func NewSendService(cfg *config.Config, client textnow.Client, logger *zap.Logger) service.SendService {
	return service.NewSendService(client, cfg.Send, logger)
}

func NewMediaService(client textnow.Client, logger *zap.Logger) service.MediaService {
	return service.NewMediaService(client, logger)
}

func NewSynthesisService(synthesizer tts.Synthesizer, logger *zap.Logger) service.SynthesisService {
	return service.NewSynthesisService(synthesizer, logger)
}

func NewUserService(repo repository.UserRepository, logger *zap.Logger) service.UserService {
	return service.NewUserService(repo, logger)
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(metrics.HTTPMiddleware(m))
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting api server", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
