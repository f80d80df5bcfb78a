package presenter

import (
	"image"
	"time"

	"github.com/selevt/video-area-selection/domain/selection"
	"github.com/selevt/video-area-selection/domain/video"
	"github.com/selevt/video-area-selection/ui/images"
	"github.com/selevt/video-area-selection/ui/model"
)

// OverlaySource narrows the engine contract to what frame rendering needs.
type OverlaySource interface {
	Rect() (selection.Rect, bool)
	Enabled() bool
	Colors() (fill, border string)
}

// SurfaceView is the widget that shows the rendered frame. TargetSize is the
// box the frame is scaled to fit; the actual display box follows from the
// frame handed to SetFrame.
type SurfaceView interface {
	SetFrame(img *image.RGBA)
	TargetSize() (w, h int)
}

// PlaybackStatsView displays playback duration and frame count.
type PlaybackStatsView interface {
	SetPlayback(elapsed time.Duration, frames uint64)
}

// PlaybackPresenter pulls frames from the source, composites the selection
// overlay and pushes the result to the surface view.
type PlaybackPresenter struct {
	Source   video.FrameSource
	Overlay  OverlaySource
	View     SurfaceView
	Playback *model.PlaybackModel
	Stats    PlaybackStatsView

	lastSeq     uint64
	lastVisible bool
	lastRect    selection.Rect
	lastEnabled bool
}

func NewPlaybackPresenter(source video.FrameSource, overlay OverlaySource, view SurfaceView, playback *model.PlaybackModel, stats PlaybackStatsView) *PlaybackPresenter {
	return &PlaybackPresenter{Source: source, Overlay: overlay, View: view, Playback: playback, Stats: stats}
}

// Tick renders the latest frame when the frame or the overlay changed since
// the previous tick, and refreshes playback stats.
func (p *PlaybackPresenter) Tick(now time.Time) {
	if p == nil || p.Source == nil || p.View == nil {
		return
	}
	snap := p.Source.LatestFrame()
	if p.Playback != nil {
		p.Playback.OnTick(p.Source.Running(), snap.Sequence, now)
		if p.Stats != nil {
			elapsed, frames := p.Playback.Values()
			p.Stats.SetPlayback(elapsed, frames)
		}
	}
	if snap.Image == nil {
		return
	}
	if !p.dirty(snap.Sequence) {
		return
	}
	p.render(snap.Image)
}

// dirty reports whether the composited frame needs a repaint.
func (p *PlaybackPresenter) dirty(seq uint64) bool {
	rect, visible := selection.Rect{}, false
	enabled := false
	if p.Overlay != nil {
		rect, visible = p.Overlay.Rect()
		enabled = p.Overlay.Enabled()
	}
	if seq == p.lastSeq && rect == p.lastRect && visible == p.lastVisible && enabled == p.lastEnabled {
		return false
	}
	p.lastSeq = seq
	p.lastRect = rect
	p.lastVisible = visible
	p.lastEnabled = enabled
	return true
}

func (p *PlaybackPresenter) render(frame *image.RGBA) {
	w, h := p.View.TargetSize()
	if w <= 0 || h <= 0 {
		return
	}
	display := images.ScaleToFit(frame, w, h)
	if display == nil {
		return
	}
	if p.Overlay != nil {
		if rect, visible := p.Overlay.Rect(); visible {
			fill, border := p.Overlay.Colors()
			images.DrawSelection(display, rect,
				images.ParseHexColor(fill), images.ParseHexColor(border),
				p.Overlay.Enabled())
		}
	}
	p.View.SetFrame(display)
}
