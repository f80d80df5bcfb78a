package main

import (
	"flag"
	"log/slog"

	"github.com/selevt/video-area-selection/app"
	"github.com/selevt/video-area-selection/assets"
	"github.com/selevt/video-area-selection/config"
	"github.com/selevt/video-area-selection/domain/video"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON config file")
	sourceKind := flag.String("source", "still", "frame source: still, sequence or screen")
	sourcePath := flag.String("path", "", "image file (still) or frame directory (sequence)")
	fps := flag.Int("fps", 0, "playback rate override")
	debug := flag.Bool("debug", false, "enable debug logging and runtime stats")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *debug {
		cfg.Debug = true
	}
	_ = cfg.Validate()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	var source video.FrameSource
	switch *sourceKind {
	case "sequence":
		source = video.NewSequenceSource(*sourcePath, cfg.FPS, logger)
	case "screen":
		source = video.NewScreenSource(cfg.FPS, logger)
	default:
		if *sourcePath != "" {
			source = video.NewStillSource(*sourcePath, logger)
		} else {
			source = video.NewStillFromBytes(assets.PosterPNG, logger)
		}
	}

	application := app.NewApp("Area Selection", 840, 680, cfg, logger, source, *cfgPath)
	application.Start()
}
