// Package main provides the entry point for the Holobac Discord bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/Oriyon-111111/go-discord-holobac/internal/app"
	"github.com/Oriyon-111111/go-discord-holobac/internal/bot"
	"github.com/Oriyon-111111/go-discord-holobac/internal/commands"
	"github.com/Oriyon-111111/go-discord-holobac/internal/config"
	"github.com/Oriyon-111111/go-discord-holobac/internal/discord"
	"github.com/Oriyon-111111/go-discord-holobac/internal/holobac"
	"github.com/Oriyon-111111/go-discord-holobac/internal/infrastructure"
	"github.com/Oriyon-111111/go-discord-holobac/internal/render"
	pkginfra "github.com/Oriyon-111111/go-discord-holobac/pkg/infrastructure"
)

func main() {
	// Default config path; override with HOLOBAC_CONFIG for deployments.
	configPath := "config.yaml"
	if env := os.Getenv("HOLOBAC_CONFIG"); env != "" {
		configPath = env
	}

	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		discord.Module,

		// Application modules
		render.Module,
		holobac.Module,
		commands.Module,
		bot.Module,

		// Supply the config path
		fx.Supply(configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(pkginfra.NewFxLoggerAdapter),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go application.Run()

	sig := <-sigCh
	fmt.Printf("Received signal: %s, initiating shutdown.\n", sig)

	// Give the application 30 seconds to shut down gracefully.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := application.Stop(shutdownCtx)
	cancel()

	if err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application has shut down gracefully.")
}
