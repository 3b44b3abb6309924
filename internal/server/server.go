package server

import (
	"crypto/sha256"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketai/internal/config"
	"marketai/internal/handlers"
	"marketai/internal/middleware"
	"marketai/internal/models"
	"marketai/web"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App    *fiber.App
	Cfg    *config.Config
	Logger *zap.Logger
}

// New creates a new server with middleware configured. sessionStorage may be
// nil, in which case sessions live in process memory.
func New(cfg *config.Config, log *zap.Logger, sessionStorage fiber.Storage) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	// Setup template engine
	engine := html.NewFileSystem(http.FS(web.Views()), ".html")
	engine.Reload(cfg.IsDev())

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(cfg, log),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// CORS middleware. The public base URL is the default origin; credentials
	// are only allowed with an explicit origin list.
	corsOrigins := cfg.BaseURL
	if cfg.CORSOrigins != "" {
		corsOrigins = cfg.CORSOrigins
	}
	corsConfig := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		MaxAge:       86400,
	}
	if corsOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(corsOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	app.Use(cors.New(corsConfig))

	// Static files are served before sessions so assets never create one.
	staticConfig := static.Config{
		FS:     web.Static(),
		MaxAge: 3600,
	}
	if cfg.IsDev() {
		staticConfig.CacheDuration = -1
		staticConfig.MaxAge = 0
	}
	app.Get("/static*", static.New("", staticConfig))

	// Cookie encryption middleware
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: deriveEncryptionKey(cfg.SessionSecret),
	}))

	// Session middleware
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		Storage:        sessionStorage,
		IdleTimeout:    cfg.SessionIdleTimeout,
		CookieSecure:   cfg.TLSEnabled() || !cfg.IsDev(),
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)
	app.Use(middleware.TrackSession)

	return &Server{
		App:    app,
		Cfg:    cfg,
		Logger: log,
	}
}

// errorHandler renders page errors with the error view and API errors as the
// JSON failure shape.
func errorHandler(cfg *config.Config, log *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			log.Error("unhandled error",
				zap.String("path", c.Path()),
				zap.String("request_id", requestid.FromContext(c)),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(models.FailureResponse{
				Success: false,
				Error:   message,
			})
		}

		return c.Status(code).Render("error", handlers.MergeCommon(fiber.Map{
			"Title":   "Error",
			"Message": message,
		}, cfg, nil))
	}
}

// Start starts the server with the configured address and TLS settings.
func (s *Server) Start() error {
	if s.Cfg.TLSEnabled() {
		s.Logger.Info("starting server with TLS", zap.String("addr", s.Cfg.ServerAddr))
		return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
			CertFile:      s.Cfg.TLSCertFile,
			CertKeyFile:   s.Cfg.TLSKeyFile,
			TLSConfigFunc: func(tc *tls.Config) { tc.MinVersion = tls.VersionTLS12 },
		})
	}
	s.Logger.Info("starting server", zap.String("addr", s.Cfg.ServerAddr))
	return s.App.Listen(s.Cfg.ServerAddr)
}

// Shutdown gracefully shuts down the server, waiting at most timeout for
// in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.App.ShutdownWithTimeout(timeout)
}

// deriveEncryptionKey derives a 32-byte encryption key from the session secret.
func deriveEncryptionKey(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(hash[:])
}
