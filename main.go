package main

import (
	"flag"
	"log/slog"
	"os"

	"FingerPaint/internal/canvas"
	"FingerPaint/internal/config"
	"FingerPaint/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML settings file")
	verbose := flag.Bool("v", false, "log gesture and pen detail")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	canvas.SetLogger(logger)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logger.Error("load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := ui.RunApp(cfg); err != nil {
		logger.Error("run", "error", err)
		os.Exit(1)
	}
}
