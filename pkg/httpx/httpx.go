// Package httpx builds the fiber application shared by the server and the handler tests.
package httpx

import (
	"errors"

	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/Abraxas-365/headhunter/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options configures NewApp
type Options struct {
	AppName string
	// ProxyHeader names the header holding the client address behind a reverse proxy.
	// Empty means the connection's remote address is used.
	ProxyHeader string
	// AccessLog enables the request logger middleware
	AccessLog bool
}

// NewApp creates a fiber app with the global error handler and middleware
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
		ProxyHeader:           opts.ProxyHeader,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, api-signature, api-jwt",
		AllowMethods: "GET, POST, HEAD",
	}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	return app
}

// ErrorHandler converts internal errors to standard HTTP responses
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber errors (unknown route, wrong method, oversized body) get the same body shape
	var fe *fiber.Error
	if errors.As(err, &fe) {
		e := errx.FromStatus(fe.Code, fe.Message)
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	if e, ok := errx.As(err); ok {
		if e.Type == errx.TypeInternal {
			logx.With("method", c.Method(), "path", c.Path(), "code", e.Code).Error(e.Error())
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
