package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/dd0wney/roomgraph/pkg/api"
	"github.com/dd0wney/roomgraph/pkg/metrics"
)

func main() {
	port := flag.Int("port", 0, "HTTP server port (default 8080, or set PORT)")
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	// Structured logging (Railway best practice)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	config := api.DefaultConfig()
	if *configPath != "" {
		loaded, err := api.LoadConfig(*configPath)
		if err != nil {
			logger.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		config = loaded
	}

	// Flag takes precedence over config file, env over default
	if *port != 0 {
		config.Port = *port
	} else if envPort := os.Getenv("PORT"); envPort != "" {
		if p, err := strconv.Atoi(envPort); err == nil {
			config.Port = p
		}
	}

	if err := config.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("roomgraph server starting",
		"port", config.Port,
		"area_threshold", config.Detection.AreaThreshold,
		"door_gap_threshold", config.Detection.DoorGapThreshold,
		"outer_boundary_ratio", config.Detection.OuterBoundaryRatio,
		"max_cycles", config.Detection.MaxCycles,
		"max_cycle_length", config.Detection.MaxCycleLength,
	)

	server := api.NewServer(config, metrics.DefaultRegistry())
	if err := server.Start(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
