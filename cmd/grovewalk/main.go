// Package main is the entry point for the grovewalk scene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dusklight/grovewalk/internal/config"
	"github.com/dusklight/grovewalk/internal/game"
	"github.com/dusklight/grovewalk/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== grovewalk ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the viewer
	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	// Run the frame loop
	if err := g.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
