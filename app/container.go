package app

import (
	"log/slog"

	"github.com/selevt/video-area-selection/config"
	"github.com/selevt/video-area-selection/domain/selection"
	"github.com/selevt/video-area-selection/domain/video"
	"github.com/selevt/video-area-selection/ui/model"
	"github.com/selevt/video-area-selection/ui/presenter"
	"github.com/selevt/video-area-selection/ui/view"
)

// AppContainer assembles models, the frame source, presenters and the root view.
type AppContainer struct {
	Config      *config.Config
	Logger      *slog.Logger
	Source      video.FrameSource
	Coordinates *model.CoordinateModel
	Playback    *model.PlaybackModel
	Engine      *selection.Engine
	RootView    *view.RootView
	UI          view.UI

	// Presenters
	Selection *presenter.SelectionPresenter
	Playing   *presenter.PlaybackPresenter
	Loop      *presenter.Loop
}

// BuildContainer constructs the widget-free components. The engine and the
// presenters need built widgets and are wired by the app wrapper.
func BuildContainer(cfg *config.Config, logger *slog.Logger, source video.FrameSource, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Source: source}
	c.Coordinates = model.NewCoordinateModel()
	c.Playback = model.NewPlaybackModel()
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView
	return c
}
