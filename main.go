// Command blitzcrop is a GUI for interactive batch image cropping: drag the
// diagonal of a region, tilt it with a mouse move, click to confirm.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/luphord/blitzcrop-go/app"
	"github.com/luphord/blitzcrop-go/config"
	"github.com/luphord/blitzcrop-go/domain/gallery"
)

const version = "0.1.0"

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version number")
		cfgPath     = flag.String("config", config.DefaultPath(), "path to the JSON config file")
		outputDir   = flag.String("output", "", "directory for accepted crops (overrides config)")
		fromScreen  = flag.Bool("screenshot", false, "crop a fresh screen capture instead of image files")
		debugMode   = flag.Bool("debug", false, "enable debug logging and runtime stats")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("blitzcrop " + version)
		return
	}

	cfg, cfgErr := config.Load(*cfgPath)
	if *debugMode {
		cfg.Debug = true
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	var gal *gallery.Gallery
	if !*fromScreen {
		var err error
		gal, err = gallery.New(flag.Args())
		if err != nil {
			logger.Error("no images to crop; pass image paths or use -screenshot")
			os.Exit(2)
		}
	}

	application := app.NewApp("blitzcrop", cfg, logger, gal)
	if err := application.Start(); err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
}
