package selection

import (
	"errors"
	"log/slog"
)

// Default cosmetic values for the selection rectangle.
const (
	DefaultFillColor   = "#ff0000"
	DefaultBorderColor = "#ff0000"
)

// HandleSize is the side length in displayed pixels of the square hit zone
// centered on each corner handle.
const HandleSize = 8

// Options configures a new Engine.
type Options struct {
	// Surface is the video-bearing collaborator to instrument. Required.
	Surface Surface
	// OnChange is invoked with a snapshot on every successful update.
	OnChange ChangeListener
	// FillColor and BorderColor are cosmetic; the view applies translucency
	// to the fill itself.
	FillColor   string
	BorderColor string
	// Enabled sets the initial interaction state.
	Enabled bool
	Logger  *slog.Logger
}

// Engine owns the single authoritative selection rectangle (displayed-pixel
// space) and the gesture state machine that mutates it. All methods must be
// called from the UI event loop; nothing here is safe for concurrent use.
type Engine struct {
	surface     Surface
	onChange    ChangeListener
	fillColor   string
	borderColor string
	logger      *slog.Logger

	state   EngineState
	rect    Rect
	visible bool

	// drag-to-create bookkeeping
	anchorX, anchorY int
	lastX, lastY     int

	// resize bookkeeping
	activeHandle Handle
	refRect      Rect

	enabled   bool
	destroyed bool

	subs           subscriptionSet
	listeners      []ChangeListener
	stateListeners []StateListener
}

// New constructs an engine bound to one surface for its whole life.
// Replacing the surface requires Destroy and a fresh New.
func New(opts Options) (*Engine, error) {
	if opts.Surface == nil {
		return nil, errors.New("selection: surface is required")
	}
	if opts.FillColor == "" {
		opts.FillColor = DefaultFillColor
	}
	if opts.BorderColor == "" {
		opts.BorderColor = DefaultBorderColor
	}
	e := &Engine{
		surface:     opts.Surface,
		onChange:    opts.OnChange,
		fillColor:   opts.FillColor,
		borderColor: opts.BorderColor,
		logger:      opts.Logger,
		state:       StateIdle,
	}
	if opts.Enabled {
		e.Enable()
	}
	return e, nil
}

// Enable marks the engine active and acquires the global pointer-up
// subscription. Returns the engine for chaining. Idempotent.
func (e *Engine) Enable() *Engine {
	if e == nil || e.destroyed || e.enabled {
		return e
	}
	e.enabled = true
	e.subs.Acquire(subPointerUp, nil)
	if e.logger != nil {
		e.logger.Debug("selection enabled")
	}
	return e
}

// Disable blocks interaction and releases every live subscription, including
// an in-flight gesture's pointer-move listener. The last rectangle remains
// visible as a frozen reference.
func (e *Engine) Disable() {
	if e == nil || e.destroyed || !e.enabled {
		return
	}
	e.enabled = false
	e.subs.ReleaseAll()
	if e.state != StateIdle {
		e.activeHandle = HandleNone
		e.transition(StateIdle)
	}
	if e.logger != nil {
		e.logger.Debug("selection disabled")
	}
}

// Enabled reports whether interaction is currently allowed.
func (e *Engine) Enabled() bool { return e != nil && e.enabled }

// State returns the current gesture state.
func (e *Engine) State() EngineState {
	if e == nil {
		return StateIdle
	}
	return e.state
}

// Rect returns the live displayed-pixel rectangle and whether one is visible.
func (e *Engine) Rect() (Rect, bool) {
	if e == nil || !e.visible {
		return Rect{}, false
	}
	return e.rect, true
}

// Colors returns the configured fill and border colors.
func (e *Engine) Colors() (fill, border string) { return e.fillColor, e.borderColor }

// AddListener registers an additional change listener.
func (e *Engine) AddListener(l ChangeListener) {
	if e == nil || l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

// AddStateListener registers a gesture state transition listener.
func (e *Engine) AddStateListener(l StateListener) {
	if e == nil || l == nil {
		return
	}
	e.stateListeners = append(e.stateListeners, l)
}

// ActiveSubscriptions returns the number of live global-listener tokens.
// Exposed for leak instrumentation in tests.
func (e *Engine) ActiveSubscriptions() int {
	if e == nil {
		return 0
	}
	return e.subs.Count()
}

// PointerDown starts a drag-to-create gesture at the displayed point (x, y).
// A press inside the existing visible rectangle is swallowed without starting
// a new selection.
func (e *Engine) PointerDown(x, y int) {
	if e == nil || e.destroyed || !e.enabled || e.state != StateIdle {
		return
	}
	if e.visible && e.rect.Contains(x, y) {
		// Reserved for a future move-the-rectangle gesture.
		return
	}
	f := e.surface.Frame()
	x, y = clampPoint(x, y, f)
	e.anchorX, e.anchorY = x, y
	e.lastX, e.lastY = x, y
	e.rect = Rect{Left: x, Top: y, Width: 1, Height: 1}
	e.visible = true
	e.subs.Acquire(subPointerMove, nil)
	e.transition(StateCreating)
	e.publish()
}

// HandleDown starts a resize gesture from the given corner handle. Handle
// presses take priority over the create overlay; the view must route them
// here before PointerDown.
func (e *Engine) HandleDown(h Handle, x, y int) {
	if e == nil || e.destroyed || !e.enabled || e.state != StateIdle {
		return
	}
	if h == HandleNone || !e.visible {
		return
	}
	e.activeHandle = h
	e.refRect = e.rect
	e.subs.Acquire(subPointerMove, nil)
	e.transition(StateResizing)
}

// PointerMove advances the active gesture. Ignored unless a gesture holds
// the pointer-move subscription; out-of-bounds positions are clamped to the
// displayed video box, never rejected.
func (e *Engine) PointerMove(x, y int) {
	if e == nil || e.destroyed || !e.subs.Holds(subPointerMove) {
		return
	}
	switch e.state {
	case StateCreating:
		e.applyCreate(x, y)
	case StateResizing:
		e.applyResize(x, y)
	}
}

// PointerUp finalizes the active gesture. For create gestures the last
// recorded move is replayed once more so the published rectangle matches the
// final pointer position even when the release carries no new coordinate.
func (e *Engine) PointerUp(x, y int) {
	if e == nil || e.destroyed || !e.subs.Holds(subPointerUp) {
		return
	}
	_ = x
	_ = y
	switch e.state {
	case StateCreating:
		e.applyCreate(e.lastX, e.lastY)
		e.releaseMove()
		e.transition(StateIdle)
	case StateResizing:
		e.releaseMove()
		e.activeHandle = HandleNone
		e.transition(StateIdle)
	}
}

// GetSelection recomputes a snapshot from the live rectangle and the current
// frame, so it stays correct across intervening resizes. Returns nil while no
// rectangle exists or while the transform is unavailable.
func (e *Engine) GetSelection() *SelectionData {
	if e == nil || e.destroyed || !e.visible {
		return nil
	}
	data, ok := ToNative(e.rect, e.surface.Frame())
	if !ok {
		return nil
	}
	return &data
}

// SetSelection stores a native-resolution rectangle programmatically and
// publishes a change. Silently no-ops while native or display dimensions are
// unknown.
func (e *Engine) SetSelection(nr NativeRect) {
	if e == nil || e.destroyed {
		return
	}
	r, ok := ToDisplay(nr, e.surface.Frame())
	if !ok {
		if e.logger != nil {
			e.logger.Debug("set selection skipped, transform unavailable")
		}
		return
	}
	e.rect = r
	e.visible = true
	e.publish()
}

// ClearSelection hides the rectangle. No change is published; there is no
// selection to report.
func (e *Engine) ClearSelection() {
	if e == nil || e.destroyed {
		return
	}
	e.visible = false
}

// Destroy irreversibly detaches the engine: every subscription is released
// and all further operations no-op. Safe to call more than once.
func (e *Engine) Destroy() {
	if e == nil || e.destroyed {
		return
	}
	e.subs.ReleaseAll()
	e.enabled = false
	e.activeHandle = HandleNone
	e.state = StateIdle
	e.destroyed = true
	e.listeners = nil
	e.stateListeners = nil
	if e.logger != nil {
		e.logger.Debug("selection engine destroyed")
	}
}

func (e *Engine) applyCreate(px, py int) {
	f := e.surface.Frame()
	px, py = clampPoint(px, py, f)
	e.lastX, e.lastY = px, py
	left, width := span(e.anchorX, px)
	top, height := span(e.anchorY, py)
	e.rect = Rect{Left: left, Top: top, Width: width, Height: height}
	e.publish()
}

// span returns the axis-aligned extent between the gesture anchor and the
// current pointer on one axis, at least 1 pixel wide.
func span(anchor, cur int) (origin, size int) {
	origin = anchor
	if cur < anchor {
		origin = cur
	}
	size = anchor - cur
	if size < 0 {
		size = -size
	}
	if size < 1 {
		size = 1
	}
	return origin, size
}

func (e *Engine) applyResize(px, py int) {
	f := e.surface.Frame()
	px, py = clampPoint(px, py, f)
	ref := e.refRect
	var r Rect
	switch e.activeHandle {
	case HandleNW:
		fx, fy := ref.Left+ref.Width, ref.Top+ref.Height
		r = Rect{Left: px, Top: py, Width: fx - px, Height: fy - py}
		if r.Width < 1 {
			r.Width = 1
			r.Left = fx - 1
		}
		if r.Height < 1 {
			r.Height = 1
			r.Top = fy - 1
		}
	case HandleNE:
		fy := ref.Top + ref.Height
		r = Rect{Left: ref.Left, Top: py, Width: px - ref.Left, Height: fy - py}
		if r.Width < 1 {
			r.Width = 1
		}
		if r.Height < 1 {
			r.Height = 1
			r.Top = fy - 1
		}
	case HandleSW:
		fx := ref.Left + ref.Width
		r = Rect{Left: px, Top: ref.Top, Width: fx - px, Height: py - ref.Top}
		if r.Width < 1 {
			r.Width = 1
			r.Left = fx - 1
		}
		if r.Height < 1 {
			r.Height = 1
		}
	case HandleSE:
		r = Rect{Left: ref.Left, Top: ref.Top, Width: px - ref.Left, Height: py - ref.Top}
		if r.Width < 1 {
			r.Width = 1
		}
		if r.Height < 1 {
			r.Height = 1
		}
	default:
		return
	}
	e.rect = r
	e.publish()
}

func (e *Engine) releaseMove() {
	for _, s := range e.subs.active {
		if s.kind == subPointerMove {
			e.subs.Release(s)
			return
		}
	}
}

// publish computes a fresh snapshot and notifies listeners. Skipped entirely
// while the transform is unavailable; listeners never see a nil snapshot.
func (e *Engine) publish() {
	data, ok := ToNative(e.rect, e.surface.Frame())
	if !ok {
		return
	}
	if e.onChange != nil {
		e.onChange(data)
	}
	for _, l := range e.listeners {
		l(data)
	}
}

func (e *Engine) transition(next EngineState) {
	prev := e.state
	if prev == next {
		return
	}
	e.state = next
	if e.logger != nil {
		e.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range e.stateListeners {
		l(prev, next)
	}
}

// HandleAt reports which corner handle of r, if any, covers the displayed
// point (x, y). Used by views to give handle presses priority over the
// create overlay.
func HandleAt(r Rect, x, y int) (Handle, bool) {
	corners := []struct {
		h      Handle
		cx, cy int
	}{
		{HandleNW, r.Left, r.Top},
		{HandleNE, r.Left + r.Width, r.Top},
		{HandleSW, r.Left, r.Top + r.Height},
		{HandleSE, r.Left + r.Width, r.Top + r.Height},
	}
	half := HandleSize / 2
	for _, c := range corners {
		if x >= c.cx-half && x <= c.cx+half && y >= c.cy-half && y <= c.cy+half {
			return c.h, true
		}
	}
	return HandleNone, false
}

// Ensure contract satisfaction.
var _ EngineContract = (*Engine)(nil)
