package app

import (
	"context"
	"fmt"
	"strings"

	"skill-bridge/internal/config"
	"skill-bridge/internal/delivery/http/handler"
	"skill-bridge/internal/delivery/http/middleware"
	"skill-bridge/internal/delivery/http/routes"
	v1 "skill-bridge/internal/delivery/http/routes/v1"
	"skill-bridge/internal/pipeline"
	"skill-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, container)
	registerRoutes(f, container)

	go container.Hub.Run()

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	refresh := func(ctx context.Context) {
		_ = c.Refresh.Run(ctx, pipeline.RefreshParams{})
	}

	handlers := v1.Handlers{
		Posting: handler.NewPostingHandler(c.Postings),
		Compat:  handler.NewCompatHandler(c.Compat),
		Mapping: handler.NewMappingHandler(c.Mapping, refresh),
		Catalog: handler.NewCatalogHandler(c.Catalog),
	}
	health := handler.NewHealthHandler(c.DB, c.Cache)

	routes.NewRegistry(health, handlers).Register(f)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	f.Get("/ws", wsHandler.HandlePostingsWS)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
