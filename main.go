package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"lyricrelay/config"
	"lyricrelay/handlers"
	"lyricrelay/internal/claude"
	"lyricrelay/internal/youtube"
	"lyricrelay/middleware"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg)

	if cfg.AnthropicAPIKey == "" {
		log.Warn("ANTHROPIC_API_KEY is not set; /analyze_lyrics will fail")
	}

	h := handlers.NewApplicationHandler(
		youtube.NewClient(),
		claude.NewClient(cfg.AnthropicAPIKey),
		log,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(log))
	app.Use(rateLimiter(50, time.Hour))

	// Routes. Per-route limits sit on top of the global 50/hour ceiling.
	app.Get("/health", h.HealthCheck)
	app.Get("/get_transcript", rateLimiter(30, time.Minute), h.GetTranscript)
	app.Post("/analyze_lyrics", rateLimiter(20, time.Minute), h.AnalyzeLyrics)

	addr := ":" + cfg.Port
	log.WithField("port", cfg.Port).Info("Starting server")
	if err := app.Listen(addr); err != nil {
		log.WithField("error", err.Error()).Fatal("Server stopped")
	}
}

// rateLimiter builds a per-client-IP limiter returning the common error
// envelope on violation.
func rateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		},
	})
}

// errorHandler is the transport-level catch-all: anything a handler did not
// translate itself (including recovered panics) becomes the JSON error
// envelope.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"uri":   c.OriginalURL(),
				"error": err.Error(),
			}).Error("Internal server error")
			return c.Status(code).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
