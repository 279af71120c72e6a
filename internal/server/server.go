// Package server exposes the notation parser over HTTP.
package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/kiaak-go/internal/config"
)

// RequestIDHeader carries the id assigned to every request.
const RequestIDHeader = "X-Request-ID"

// New builds the HTTP application.
func New(cfg *config.Config) *fiber.App {
	app, _ := newApp(cfg)
	return app
}

func newApp(cfg *config.Config) (*fiber.App, *Handler) {
	app := fiber.New(fiber.Config{
		AppName:               "kiaak",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(RequestID())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		cfg.Logf(config.LevelDebug, "%s %s %s -> %d", requestID(c), c.Method(), c.Path(), c.Response().StatusCode())
		return err
	})

	h := NewHandler(cfg)
	app.Get("/healthz", h.Healthz)
	app.Post("/parse", h.ParseMove)
	app.Post("/record", h.ParseRecord)

	return app, h
}

// Run serves on cfg.Listen until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	app := New(cfg)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			cfg.Logf(config.LevelError, "shutdown: %v", err)
		}
	}()

	cfg.Logf(config.LevelInfo, "listening on %s", cfg.Listen)
	err := app.Listen(cfg.Listen)
	if ctx.Err() != nil {
		<-done
		return nil
	}
	return err
}

// RequestID assigns a request id, reusing the client's when it is a UUID,
// and echoes it in the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals("requestID", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestID").(string)
	return id
}

// errorHandler renders routing and framework errors as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":     err.Error(),
		"requestId": requestID(c),
	})
}
