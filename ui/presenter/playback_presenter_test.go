package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/selevt/video-area-selection/domain/selection"
	"github.com/selevt/video-area-selection/domain/video"
	"github.com/selevt/video-area-selection/ui/model"
)

type mockSource struct {
	snap    video.FrameSnapshot
	running bool
}

func (s *mockSource) Start()                           {}
func (s *mockSource) Stop()                            {}
func (s *mockSource) Running() bool                    { return s.running }
func (s *mockSource) LatestFrame() video.FrameSnapshot { return s.snap }
func (s *mockSource) NativeSize() (int, int) {
	if s.snap.Image == nil {
		return 0, 0
	}
	b := s.snap.Image.Bounds()
	return b.Dx(), b.Dy()
}

type mockOverlay struct {
	rect    selection.Rect
	visible bool
	enabled bool
}

func (o *mockOverlay) Rect() (selection.Rect, bool)  { return o.rect, o.visible }
func (o *mockOverlay) Enabled() bool                 { return o.enabled }
func (o *mockOverlay) Colors() (string, string)      { return "#ff0000", "#ff0000" }

type mockSurface struct {
	frames []*image.RGBA
	w, h   int
}

func (v *mockSurface) SetFrame(img *image.RGBA) { v.frames = append(v.frames, img) }
func (v *mockSurface) TargetSize() (int, int)   { return v.w, v.h }

func TestPlaybackPresenter_RendersOnNewFrame(t *testing.T) {
	src := &mockSource{running: true}
	src.snap = video.FrameSnapshot{Image: image.NewRGBA(image.Rect(0, 0, 64, 36)), Sequence: 1}
	view := &mockSurface{w: 32, h: 32}
	p := NewPlaybackPresenter(src, &mockOverlay{}, view, model.NewPlaybackModel(), nil)

	p.Tick(time.Now())
	if len(view.frames) != 1 {
		t.Fatalf("expected one rendered frame, got %d", len(view.frames))
	}
	got := view.frames[0].Bounds()
	if got.Dx() != 32 || got.Dy() != 18 {
		t.Fatalf("frame not scaled to fit: %v", got)
	}

	// Same sequence, same overlay: no repaint.
	p.Tick(time.Now())
	if len(view.frames) != 1 {
		t.Fatalf("unchanged state must not repaint")
	}

	src.snap.Sequence = 2
	p.Tick(time.Now())
	if len(view.frames) != 2 {
		t.Fatalf("new sequence must repaint")
	}
}

func TestPlaybackPresenter_RepaintsWhenOverlayChanges(t *testing.T) {
	src := &mockSource{running: true}
	src.snap = video.FrameSnapshot{Image: image.NewRGBA(image.Rect(0, 0, 64, 36)), Sequence: 1}
	overlay := &mockOverlay{}
	view := &mockSurface{w: 64, h: 36}
	p := NewPlaybackPresenter(src, overlay, view, nil, nil)

	p.Tick(time.Now())
	overlay.rect = selection.Rect{Left: 5, Top: 5, Width: 10, Height: 10}
	overlay.visible = true
	p.Tick(time.Now())
	if len(view.frames) != 2 {
		t.Fatalf("overlay change must trigger repaint, got %d frames", len(view.frames))
	}
	last := view.frames[1]
	if c := last.RGBAAt(5, 5); c.R == 0 {
		t.Fatalf("selection border missing from composite: %+v", c)
	}
}

func TestPlaybackPresenter_SkipsWithoutFrameOrTarget(t *testing.T) {
	src := &mockSource{}
	view := &mockSurface{w: 0, h: 0}
	p := NewPlaybackPresenter(src, &mockOverlay{}, view, nil, nil)
	p.Tick(time.Now())
	src.snap = video.FrameSnapshot{Image: image.NewRGBA(image.Rect(0, 0, 8, 8)), Sequence: 1}
	p.Tick(time.Now())
	if len(view.frames) != 0 {
		t.Fatalf("no repaint expected without a target box")
	}
}
