package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"ytinsight/config"
	"ytinsight/errors"
	"ytinsight/handlers"
	"ytinsight/llm"
	"ytinsight/logger"
	"ytinsight/transcript"
	"ytinsight/validation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logConfig, err := logger.Setup(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize transcript retriever
	transcriptClient := transcript.NewClient(cfg.Transcript)
	transcriptService, err := transcript.NewService(transcriptClient, transcript.Config{
		CacheSize: cfg.Transcript.CacheSize,
	})
	if err != nil {
		log.Fatalf("Failed to initialize transcript service: %v", err)
	}

	// Initialize model gateway
	gateway, err := llm.NewGemini(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize model gateway: %v", err)
	}
	defer gateway.Close()

	// Initialize validator and handlers
	validator := validation.NewValidator(cfg)
	h := handlers.New(transcriptService, gateway, validator)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: !cfg.Debug,
		StrictRouting:         true,
		CaseSensitive:         true,
		AppName:               "yt-insight " + cfg.Version,
	})

	setupMiddleware(app, cfg, logConfig)

	// Health check is not rate limited
	app.Get("/api/health", handlers.HealthCheck(cfg.Version))

	// Generation endpoints share the per-client quota
	api := app.Group("/api")
	if cfg.Middleware.EnableRateLimit && cfg.RateLimit.Enabled {
		api.Use(generationLimiter(cfg.RateLimit.PerMinute, time.Minute))
		api.Use(generationLimiter(cfg.RateLimit.PerDay, 24*time.Hour))
	}
	api.Post("/summarize", h.Summarize)
	api.Post("/timestamped-summary", h.TimestampedSummary)
	api.Post("/enhanced-transcript", h.EnhancedTranscript)
	api.Post("/top-comments", h.TopComments)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	serverAddr := ":" + cfg.ServerPort
	if cfg.Debug {
		log.Printf("Server starting on http://localhost%s", serverAddr)
	}

	if err := app.Listen(serverAddr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func setupMiddleware(app *fiber.App, cfg *config.Config, logConfig *fiberLogger.Config) {
	if cfg.Middleware.EnableRecover {
		app.Use(recover.New(recover.Config{
			EnableStackTrace: cfg.Debug,
		}))
	}

	if cfg.Middleware.EnableRequestID {
		app.Use(requestid.New(requestid.Config{
			Header: "X-Request-ID",
			Generator: func() string {
				return uuid.New().String()
			},
		}))
	}

	if cfg.Middleware.EnableLogger {
		app.Use(fiberLogger.New(*logConfig))
	}

	if cfg.Middleware.EnableCORS {
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.CORS.AllowedOrigins, ","),
			AllowMethods: strings.Join(cfg.CORS.AllowedMethods, ","),
			AllowHeaders: strings.Join(cfg.CORS.AllowedHeaders, ","),
		}))
	}
}

// generationLimiter builds a fixed-window per-client quota middleware.
func generationLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return errors.RateLimited("RateLimit", "Trop de requêtes. Veuillez réessayer plus tard.")
		},
	})
}
