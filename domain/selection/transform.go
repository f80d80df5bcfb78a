package selection

import "math"

// Pure geometry transforms between displayed-pixel space, native-resolution
// space and normalized space. No mutable state; callable at any time given a
// rectangle and a frame.

// ToNative converts a displayed-pixel rectangle into a SelectionData
// snapshot. It reports false when either the native or the display dimensions
// are unknown; callers must skip notification in that case.
//
// Each of left/top/width/height is scaled and rounded independently, and the
// right/bottom margins are derived by subtracting the (also independently
// rounded) scaled far edge from the native dimension. The per-field rounding
// means Left+Width+Right can be off from NativeWidth by one pixel; that slack
// is intentional and covered by the tests.
func ToNative(r Rect, f Frame) (SelectionData, bool) {
	if f.DisplayWidth <= 0 || f.DisplayHeight <= 0 {
		return SelectionData{}, false
	}
	if f.NativeWidth <= 0 || f.NativeHeight <= 0 {
		return SelectionData{}, false
	}
	r = clampToDisplay(r, f)

	scaleX := float64(f.NativeWidth) / float64(f.DisplayWidth)
	scaleY := float64(f.NativeHeight) / float64(f.DisplayHeight)

	abs := AbsoluteCoords{
		Left:   roundScale(r.Left, scaleX),
		Top:    roundScale(r.Top, scaleY),
		Width:  roundScale(r.Width, scaleX),
		Height: roundScale(r.Height, scaleY),
	}
	abs.Right = f.NativeWidth - roundScale(r.Left+r.Width, scaleX)
	abs.Bottom = f.NativeHeight - roundScale(r.Top+r.Height, scaleY)

	nw := float64(f.NativeWidth)
	nh := float64(f.NativeHeight)
	rel := RelativeCoords{
		Left:   round6(float64(abs.Left) / nw),
		Top:    round6(float64(abs.Top) / nh),
		Width:  round6(float64(abs.Width) / nw),
		Height: round6(float64(abs.Height) / nh),
		Right:  round6(float64(abs.Right) / nw),
		Bottom: round6(float64(abs.Bottom) / nh),
	}

	return SelectionData{
		Absolute: abs,
		Relative: rel,
		Video:    VideoSize{Width: f.NativeWidth, Height: f.NativeHeight},
	}, true
}

// ToDisplay converts a native-resolution rectangle into displayed-pixel
// space for programmatic SetSelection. Same independent-rounding caveat as
// ToNative. Reports false while the transform is unavailable.
func ToDisplay(nr NativeRect, f Frame) (Rect, bool) {
	if f.DisplayWidth <= 0 || f.DisplayHeight <= 0 {
		return Rect{}, false
	}
	if f.NativeWidth <= 0 || f.NativeHeight <= 0 {
		return Rect{}, false
	}
	scaleX := float64(f.DisplayWidth) / float64(f.NativeWidth)
	scaleY := float64(f.DisplayHeight) / float64(f.NativeHeight)
	return Rect{
		Left:   roundScale(nr.Left, scaleX),
		Top:    roundScale(nr.Top, scaleY),
		Width:  roundScale(nr.Width, scaleX),
		Height: roundScale(nr.Height, scaleY),
	}, true
}

// clampToDisplay keeps the rectangle inside the displayed video box:
// non-negative origin, extent capped at the display dimensions.
func clampToDisplay(r Rect, f Frame) Rect {
	if r.Left < 0 {
		r.Left = 0
	}
	if r.Top < 0 {
		r.Top = 0
	}
	if r.Left > f.DisplayWidth {
		r.Left = f.DisplayWidth
	}
	if r.Top > f.DisplayHeight {
		r.Top = f.DisplayHeight
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	if r.Left+r.Width > f.DisplayWidth {
		r.Width = f.DisplayWidth - r.Left
	}
	if r.Top+r.Height > f.DisplayHeight {
		r.Height = f.DisplayHeight - r.Top
	}
	return r
}

// clampPoint bounds a displayed pointer position to [0,DisplayWidth] x
// [0,DisplayHeight]. Out-of-bounds input is clamped, never rejected.
func clampPoint(x, y int, f Frame) (int, int) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x > f.DisplayWidth {
		x = f.DisplayWidth
	}
	if y > f.DisplayHeight {
		y = f.DisplayHeight
	}
	return x, y
}

func roundScale(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
