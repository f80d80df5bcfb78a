package selection

// EngineState enumerates finite states of the interactive selection cycle.
type EngineState int

const (
	StateIdle EngineState = iota
	StateCreating
	StateResizing
)

func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCreating:
		return "creating"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Handle identifies one of the four corner resize affordances.
type Handle int

const (
	HandleNone Handle = iota
	HandleNW
	HandleNE
	HandleSW
	HandleSE
)

func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSW:
		return "sw"
	case HandleSE:
		return "se"
	default:
		return "none"
	}
}

// Rect is a selection rectangle in displayed-pixel space: coordinates are
// relative to the rendered video box, not the native frame.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Contains reports whether the displayed point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// NativeRect is a rectangle in native-resolution pixel space, used by
// SetSelection and carried in SelectionData.Absolute.
type NativeRect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Frame describes the video surface at one instant: the intrinsic decoded
// resolution and the current on-screen rendered size. Display dimensions are
// read on demand and never cached across computations.
type Frame struct {
	NativeWidth   int
	NativeHeight  int
	DisplayWidth  int
	DisplayHeight int
}

// AbsoluteCoords is the selection in native-resolution integer pixels.
// Right and Bottom are margins measured from the far edges of the native
// frame, not far-edge coordinates.
type AbsoluteCoords struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// RelativeCoords mirrors AbsoluteCoords as fractions of the native
// dimensions, each rounded to 6 decimal places and inside [0,1].
type RelativeCoords struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// VideoSize echoes the native resolution the coordinates refer to.
type VideoSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SelectionData is the immutable snapshot produced on every selection change.
// Consumers must not mutate it.
type SelectionData struct {
	Absolute AbsoluteCoords `json:"absolute"`
	Relative RelativeCoords `json:"relative"`
	Video    VideoSize      `json:"video"`
}

// Surface is the video-bearing collaborator the engine instruments. The
// implementation owns the widget; the engine only reads frame geometry.
type Surface interface {
	Frame() Frame
}

// SurfaceFunc adapts a plain function to the Surface interface.
type SurfaceFunc func() Frame

func (f SurfaceFunc) Frame() Frame { return f() }

// ChangeListener is called with a fresh snapshot on each successful
// selection update. It is never called without selection data.
type ChangeListener func(SelectionData)

// StateListener is called on each engine state transition.
type StateListener func(prev, next EngineState)

// Interface slices for consumers (presenters).
type SelectionSource interface {
	GetSelection() *SelectionData
	Rect() (Rect, bool)
}
type SelectionOps interface {
	SetSelection(NativeRect)
	ClearSelection()
}
type EngineLifecycle interface {
	Enable() *Engine
	Disable()
	Enabled() bool
	Destroy()
}
type PointerSink interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp(x, y int)
	HandleDown(h Handle, x, y int)
}

// EngineContract aggregate for DI.
type EngineContract interface {
	SelectionSource
	SelectionOps
	EngineLifecycle
	PointerSink
	State() EngineState
	AddListener(ChangeListener)
	AddStateListener(StateListener)
}
