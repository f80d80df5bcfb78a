package view

import (
	"log/slog"
	"time"

	"github.com/selevt/video-area-selection/config"
	"github.com/selevt/video-area-selection/domain/selection"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats       PlaybackStats
	Coordinates CoordinatePanel
	Templates   TemplateBar
	Video       VideoSurface

	// Widgets
	StateLabel *LabelWidget
	toggleBtn  *ButtonWidget
}

// Handlers carries the user-action callbacks the root view binds to buttons.
type Handlers struct {
	OnToggleSelection func()
	OnClear           func()
	OnFullFrame       func()
	OnExportCrop      func()
	OnDarkMode        func()
	OnExit            func()
	OnTemplateApply   func()
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	ShowSelection(d selection.SelectionData)
	ShowNone()
	SetOutput(s string)
	SetPlayback(elapsed time.Duration, frames uint64)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. nativeSize reports the frame source's
// intrinsic resolution for the video surface.
func (rv *RootView) Build(nativeSize func() (int, int), h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: playback stats, state label, buttons frame
	rv.Stats = NewPlaybackStats(0, 0)
	rv.StateLabel = Label(Txt("State: idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	makeBtn := func(row int, caption string, cb func()) *ButtonWidget {
		b := Button(Txt(caption), Command(cb))
		Grid(b, In(btnFrame), Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		return b
	}
	rv.toggleBtn = makeBtn(0, "Enable Selection", h.OnToggleSelection)
	makeBtn(1, "Clear", h.OnClear)
	makeBtn(2, "Full Frame", h.OnFullFrame)
	makeBtn(3, "Export Crop", h.OnExportCrop)
	makeBtn(4, "Dark Mode", h.OnDarkMode)
	makeBtn(5, "Exit", h.OnExit)

	// Coordinate readout and template rows
	rv.Coordinates = NewCoordinatePanel()
	row := rv.Coordinates.Build(1)
	rv.Templates = NewTemplateBar(rv.cfg, rv.cfgPath, rv.logger)
	row = rv.Templates.Build(row, h.OnTemplateApply)

	// Video surface placement
	rv.Video = NewVideoSurface(row, nativeSize)
	if rv.cfg != nil {
		rv.Video.SetTargetSize(rv.cfg.MaxPreviewW, rv.cfg.MaxPreviewH)
	}
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetToggleCaption relabels the enable/disable button.
func (rv *RootView) SetToggleCaption(text string) {
	if rv != nil && rv.toggleBtn != nil {
		rv.toggleBtn.Configure(Txt(text))
	}
}

// ShowSelection proxies to the coordinate panel.
func (rv *RootView) ShowSelection(d selection.SelectionData) {
	if rv != nil && rv.Coordinates != nil {
		rv.Coordinates.ShowSelection(d)
	}
}

// ShowNone proxies to the coordinate panel.
func (rv *RootView) ShowNone() {
	if rv != nil && rv.Coordinates != nil {
		rv.Coordinates.ShowNone()
	}
}

// SetOutput proxies to the template bar.
func (rv *RootView) SetOutput(s string) {
	if rv != nil && rv.Templates != nil {
		rv.Templates.SetOutput(s)
	}
}

// SetPlayback proxies to the playback stats labels.
func (rv *RootView) SetPlayback(elapsed time.Duration, frames uint64) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetPlayback(elapsed, frames)
	}
}
