package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abraxas-365/headhunter/pkg/config"
	"github.com/Abraxas-365/headhunter/pkg/httpx"
	"github.com/Abraxas-365/headhunter/pkg/logx"
	"github.com/Abraxas-365/headhunter/recruitment/candidate/candidateapi"
	"github.com/Abraxas-365/headhunter/recruitment/candidate/candidateauth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "headhunter"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	serve := serveCmd(&configPath)
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Candidate records API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(serve)
	cmd.AddCommand(signCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	// 1. Initialize Logger
	logx.SetOutput(os.Stderr, cfg.Server.LogJSON)
	logx.SetLevel(logx.ParseLevel(cfg.Server.LogLevel))
	logx.Info("Starting Headhunter API Server...")

	// 2. Initialize Dependency Container
	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	// 3. Create Fiber App with global error handler and middleware
	app := httpx.NewApp(httpx.Options{
		AppName:     "Headhunter API",
		ProxyHeader: cfg.Server.ProxyHeader,
		AccessLog:   true,
	})

	// 4. Health Check and Metrics
	app.Get("/health", func(c *fiber.Ctx) error {
		db, cache := container.Health(c.UserContext())
		status := "ok"
		if !db || !cache {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status": status,
			"db":     db,
			"redis":  cache,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(container.Registry, promhttp.HandlerOpts{})))

	// 5. Register Routes

	// Candidates: POST /api/candidate, GET /api/candidate/:id
	candidateapi.RegisterRoutes(app, container.CandidateHandlers, container.CandidateMiddlewares())

	// Login: POST /api/auth
	candidateauth.RegisterRoutes(app, container.CandidateAuthHandlers,
		container.RateLimit("auth", cfg.RateLimit.Auth),
	)

	// 6. Start Server with Graceful Shutdown
	errCh := make(chan error, 1)
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	logx.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
	return nil
}
