package images

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/selevt/video-area-selection/domain/selection"
)

// fillAlpha is the translucency applied to the selection interior so the
// frame stays readable underneath.
const fillAlpha = 70

// DrawSelection composites the selection rectangle onto dst: translucent
// fill, 1px border and, when withHandles is set, the four corner handle
// squares. Coordinates are displayed pixels relative to dst's origin.
func DrawSelection(dst *image.RGBA, r selection.Rect, fill, border color.RGBA, withHandles bool) {
	if dst == nil || r.Width < 1 || r.Height < 1 {
		return
	}
	box := image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	// color.RGBA is alpha-premultiplied; scale the channels down with the alpha.
	fill = color.RGBA{
		R: uint8(uint32(fill.R) * fillAlpha / 255),
		G: uint8(uint32(fill.G) * fillAlpha / 255),
		B: uint8(uint32(fill.B) * fillAlpha / 255),
		A: fillAlpha,
	}
	draw.Draw(dst, box, image.NewUniform(fill), image.Point{}, draw.Over)

	opaque := image.NewUniform(border)
	draw.Draw(dst, image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+1).Intersect(dst.Bounds()), opaque, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(box.Min.X, box.Max.Y-1, box.Max.X, box.Max.Y).Intersect(dst.Bounds()), opaque, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(box.Min.X, box.Min.Y, box.Min.X+1, box.Max.Y).Intersect(dst.Bounds()), opaque, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(box.Max.X-1, box.Min.Y, box.Max.X, box.Max.Y).Intersect(dst.Bounds()), opaque, image.Point{}, draw.Src)

	if !withHandles {
		return
	}
	half := selection.HandleSize / 2
	for _, c := range [][2]int{
		{r.Left, r.Top},
		{r.Left + r.Width, r.Top},
		{r.Left, r.Top + r.Height},
		{r.Left + r.Width, r.Top + r.Height},
	} {
		h := image.Rect(c[0]-half, c[1]-half, c[0]+half, c[1]+half).Intersect(dst.Bounds())
		draw.Draw(dst, h, opaque, image.Point{}, draw.Src)
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque RGBA. Unparseable
// input falls back to opaque red, matching the engine's default look.
func ParseHexColor(s string) color.RGBA {
	fallback := color.RGBA{R: 0xff, A: 0xff}
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
