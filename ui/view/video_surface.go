package view

import (
	"image"

	"github.com/selevt/video-area-selection/domain/selection"
	"github.com/selevt/video-area-selection/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerTarget receives pointer input from the surface in displayed-pixel
// coordinates. Handle presses are routed before overlay presses so a resize
// can never start a concurrent create.
type PointerTarget interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp(x, y int)
	HandleDown(h selection.Handle, x, y int)
	Rect() (selection.Rect, bool)
	Enabled() bool
}

// VideoSurface shows the rendered video frame and feeds pointer gestures to
// the selection engine. It also implements selection.Surface.
type VideoSurface interface {
	SetFrame(img *image.RGBA)
	TargetSize() (w, h int)
	SetTargetSize(w, h int)
	Frame() selection.Frame
	AttachTarget(t PointerTarget)
	Teardown()
}

type videoSurface struct {
	label      *LabelWidget
	prevPhoto  *Img
	nativeSize func() (int, int)
	target     PointerTarget

	targetW, targetH   int
	displayW, displayH int
}

// NewVideoSurface creates the surface label at the given grid row.
// nativeSize reports the frame source's intrinsic resolution; it is consulted
// on demand so late metadata arrival needs no replumbing.
func NewVideoSurface(row int, nativeSize func() (int, int)) VideoSurface {
	placeholder := image.NewRGBA(image.Rect(0, 0, 320, 180))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(0), Relief("flat"))
	Grid(label, Row(row), Column(0), Columnspan(5), Padx("0.4m"), Pady("0.4m"))
	v := &videoSurface{label: label, prevPhoto: photo, nativeSize: nativeSize}
	v.bind()
	return v
}

func (v *videoSurface) bind() {
	Bind(v.label, "<ButtonPress-1>", Command(func(e *Event) { v.onPress(e.X, e.Y) }))
	// Tk's implicit pointer grab keeps delivering motion/release to the
	// pressed widget even outside its bounds, which is exactly the
	// document-level listener behavior drags need. Out-of-box coordinates
	// are clamped by the engine.
	Bind(v.label, "<B1-Motion>", Command(func(e *Event) {
		if v.target != nil {
			v.target.PointerMove(e.X, e.Y)
		}
	}))
	Bind(v.label, "<ButtonRelease-1>", Command(func(e *Event) {
		if v.target != nil {
			v.target.PointerUp(e.X, e.Y)
		}
	}))
}

func (v *videoSurface) onPress(x, y int) {
	if v.target == nil {
		return
	}
	if v.target.Enabled() {
		if r, visible := v.target.Rect(); visible {
			if h, ok := selection.HandleAt(r, x, y); ok {
				v.target.HandleDown(h, x, y)
				return
			}
		}
	}
	v.target.PointerDown(x, y)
}

// AttachTarget wires the pointer sink. Call once after engine construction.
func (v *videoSurface) AttachTarget(t PointerTarget) { v.target = t }

// SetFrame replaces the displayed photo. The frame is already scaled and
// composited; its bounds define the current display box.
func (v *videoSurface) SetFrame(img *image.RGBA) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	b := img.Bounds()
	v.displayW, v.displayH = b.Dx(), b.Dy()
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

func (v *videoSurface) TargetSize() (int, int) { return v.targetW, v.targetH }

// SetTargetSize updates the box frames are scaled to fit. Values below 50
// are pinned so the surface never collapses.
func (v *videoSurface) SetTargetSize(w, h int) {
	if v == nil {
		return
	}
	if w < 50 {
		w = 50
	}
	if h < 50 {
		h = 50
	}
	v.targetW, v.targetH = w, h
}

// Frame reports current geometry for the selection engine: native size from
// the source, display size from the last rendered frame. Either may be zero
// while unavailable; the engine treats that as transform-unavailable.
func (v *videoSurface) Frame() selection.Frame {
	nw, nh := 0, 0
	if v.nativeSize != nil {
		nw, nh = v.nativeSize()
	}
	return selection.Frame{
		NativeWidth:   nw,
		NativeHeight:  nh,
		DisplayWidth:  v.displayW,
		DisplayHeight: v.displayH,
	}
}

// Teardown detaches the pointer sink and drops the current photo, restoring
// the widget to its inert pre-attach shape.
func (v *videoSurface) Teardown() {
	if v == nil {
		return
	}
	v.target = nil
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
		v.prevPhoto = nil
	}
}

var _ selection.Surface = (*videoSurface)(nil)
