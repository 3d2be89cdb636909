package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"varanex_backend/bootstrap"
	"varanex_backend/config"
	"varanex_backend/pkg/logging"
	"varanex_backend/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	logging.Init(cfg.AppEnv)

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}
	if !cfg.HasCredential() {
		logging.Logger.Warn("GROQ_API_KEY is not set; /ask will answer with a configuration error")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen()
	}()

	logging.Logger.Info(fmt.Sprintf("Server running on http://localhost:%s", cfg.Port))
	logging.Logger.Info(fmt.Sprintf("Health check: http://localhost:%s/health", cfg.Port))
	logging.Logger.Info("Environment: "+cfg.EnvName(), "groq_api_key", utils.MaskAPIKey(cfg.GroqAPIKey), "cors_origins", cfg.AllowOrigins())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}
