package images

import (
	"errors"
	"image"
	"image/draw"

	"github.com/selevt/video-area-selection/domain/selection"
)

// ExtractRegion copies the native-resolution region described by r out of
// frame. It clamps the rectangle to frame bounds and guarantees at least 1x1.
// Returns the copy and the clamped rectangle relative to frame.
func ExtractRegion(frame *image.RGBA, r selection.NativeRect) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	x0, y0 := r.Left, r.Top
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	w, h := r.Width, r.Height
	if x0+w > b.Dx() {
		w = b.Dx() - x0
	}
	if y0+h > b.Dy() {
		h = b.Dy() - y0
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	region := image.Rect(x0, y0, x0+w, y0+h)
	out := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Draw(out, out.Bounds(), frame.SubImage(region), region.Min, draw.Src)
	return out, region, nil
}
