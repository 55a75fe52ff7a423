package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"directions/config"
	"directions/game"
	"directions/report"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.Logging.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	reporter := report.NewReporter(os.Stdout, logger)
	reporter.Run(cfg.Samples, []game.Direction{
		game.Up{},
		game.Down{},
		game.Right{},
		game.Left{},
	})
	logger.Debug("Samples reported", "texts", len(cfg.Samples), "moves", 4)
}
