package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/selevt/video-area-selection/config"
	"github.com/selevt/video-area-selection/debug"
	"github.com/selevt/video-area-selection/domain/selection"
	"github.com/selevt/video-area-selection/domain/video"
	"github.com/selevt/video-area-selection/ui/images"
	"github.com/selevt/video-area-selection/ui/presenter"
	"github.com/selevt/video-area-selection/ui/theme"
	"github.com/selevt/video-area-selection/ui/view"
)

const (
	tick = 50 * time.Millisecond
	// metadataPoll delays the one-shot native-size check so sources that
	// load asynchronously get a chance to report before we warn.
	metadataPoll = time.Second
)

type app struct {
	c       *AppContainer
	afterID string
}

// NewApp creates the root window and assembles the container. Widgets are
// built in Start, once the Tk interpreter is live.
func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger, source video.FrameSource, cfgPath string) *app {
	a := &app{c: BuildContainer(cfg, logger, source, cfgPath)}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI, wires the selection engine and presenters, starts the
// frame source and enters the Tk main loop. Blocks until the window closes.
func (a *app) Start() {
	c := a.c
	theme.SetDark(c.Config.DarkMode)

	c.RootView.Build(c.Source.NativeSize, view.Handlers{
		OnToggleSelection: a.toggleSelection,
		OnClear:           func() { c.Selection.Clear() },
		OnFullFrame:       func() { c.Selection.SelectFullFrame(c.Source.NativeSize()) },
		OnExportCrop:      a.exportCrop,
		OnDarkMode:        a.toggleDark,
		OnExit:            a.exitHandler,
		OnTemplateApply:   func() { c.Selection.RefreshTemplate() },
	})

	eng, err := selection.New(selection.Options{
		Surface:     c.RootView.Video,
		OnChange:    func(d selection.SelectionData) { c.Selection.OnChange(d) },
		FillColor:   c.Config.FillColor,
		BorderColor: c.Config.BorderColor,
		Logger:      c.Logger,
	})
	if err != nil {
		c.Logger.Error("selection engine init failed", "error", err)
		return
	}
	c.Engine = eng
	c.RootView.Video.AttachTarget(eng)
	eng.AddStateListener(func(prev, next selection.EngineState) {
		c.UI.SetStateLabel("State: " + next.String())
	})

	c.Selection = presenter.NewSelectionPresenter(eng, c.Coordinates, c.UI, c.UI,
		c.RootView.Templates.Template)
	c.Playing = presenter.NewPlaybackPresenter(c.Source, eng, c.RootView.Video, c.Playback, c.UI)
	c.Loop = presenter.NewLoop(c.Playing, a.scheduleUpdate)

	if c.Config.Debug {
		debug.StartRuntimeLogger(2*time.Second, c.Logger)
	}

	c.Source.Start()
	TclAfter(metadataPoll, a.checkMetadata)
	a.scheduleUpdate()

	App.Wait()
}

// toggleSelection flips interaction mode and reflects it in the UI.
func (a *app) toggleSelection() {
	c := a.c
	c.Selection.Toggle()
	if c.Engine.Enabled() {
		c.RootView.SetToggleCaption("Disable Selection")
	} else {
		c.RootView.SetToggleCaption("Enable Selection")
	}
}

// exportCrop cuts the selected region out of the latest native frame and
// writes it next to the working directory as a PNG.
func (a *app) exportCrop() {
	c := a.c
	d := c.Engine.GetSelection()
	if d == nil {
		c.Logger.Warn("export crop: no selection")
		return
	}
	snap := c.Source.LatestFrame()
	if snap.Image == nil {
		c.Logger.Warn("export crop: no frame")
		return
	}
	region, rect, err := images.ExtractRegion(snap.Image, selection.NativeRect{
		Left:   d.Absolute.Left,
		Top:    d.Absolute.Top,
		Width:  d.Absolute.Width,
		Height: d.Absolute.Height,
	})
	if err != nil {
		c.Logger.Error("export crop", "error", err)
		return
	}
	name := fmt.Sprintf("crop-%s.png", time.Now().Format("20060102-150405"))
	if err := os.WriteFile(name, images.EncodePNG(region), 0o644); err != nil {
		c.Logger.Error("export crop write", "path", name, "error", err)
		return
	}
	c.Logger.Info("crop exported", "path", name,
		"width", rect.Dx(), "height", rect.Dy())
}

func (a *app) toggleDark() {
	dark := theme.ToggleDark()
	if a.c.Config != nil {
		a.c.Config.DarkMode = dark
	}
}

// checkMetadata runs once shortly after startup. Selection stays inert until
// native dimensions arrive, so a silent source is worth a warning.
func (a *app) checkMetadata() {
	w, h := a.c.Source.NativeSize()
	if w <= 0 || h <= 0 {
		a.c.Logger.Warn("video metadata unavailable, selection mapping inactive")
		TclAfter(metadataPoll, a.checkMetadata)
		return
	}
	a.c.Logger.Info("video metadata ready", "width", w, "height", h)
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.c.Engine != nil {
		a.c.Engine.Destroy()
	}
	if a.c.RootView != nil && a.c.RootView.Video != nil {
		a.c.RootView.Video.Teardown()
	}
	a.c.Source.Stop()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick with TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
