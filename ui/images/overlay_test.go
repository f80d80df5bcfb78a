package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/selevt/video-area-selection/domain/selection"
)

func TestParseHexColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#ff0000":  {R: 255, A: 255},
		"#00ff7f":  {G: 255, B: 127, A: 255},
		"#0f0":     {G: 255, A: 255},
		" #336699": {R: 0x33, G: 0x66, B: 0x99, A: 255},
		"garbage":  {R: 255, A: 255},
		"":         {R: 255, A: 255},
	}
	for in, want := range cases {
		if got := ParseHexColor(in); got != want {
			t.Fatalf("ParseHexColor(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestDrawSelection_FillAndBorder(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	DrawSelection(dst, selection.Rect{Left: 20, Top: 20, Width: 40, Height: 30}, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}, false)

	if c := dst.RGBAAt(20, 20); c.B != 255 {
		t.Fatalf("border pixel missing at corner: %+v", c)
	}
	if c := dst.RGBAAt(40, 35); c.R == 0 {
		t.Fatalf("interior fill missing: %+v", c)
	}
	if c := dst.RGBAAt(40, 35); c.A == 0 {
		t.Fatalf("interior should be composited over the frame: %+v", c)
	}
	if c := dst.RGBAAt(5, 5); c != (color.RGBA{}) {
		t.Fatalf("pixel outside the rect was touched: %+v", c)
	}
}

func TestDrawSelection_HandlesClampToFrame(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	// Rect hugging the frame edge: handle boxes extend outside and must clip.
	DrawSelection(dst, selection.Rect{Left: 0, Top: 0, Width: 49, Height: 49}, color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255}, true)
	if c := dst.RGBAAt(1, 1); c.G != 255 {
		t.Fatalf("NW handle not drawn: %+v", c)
	}
}

func TestFitSize(t *testing.T) {
	cases := []struct{ sw, sh, mw, mh, ww, wh int }{
		{1920, 1080, 960, 960, 960, 540},
		{320, 240, 640, 480, 320, 240}, // already fits, keep size
		{1000, 1000, 100, 50, 50, 50},
		{0, 100, 50, 50, 0, 0},
	}
	for _, c := range cases {
		w, h := FitSize(c.sw, c.sh, c.mw, c.mh)
		if w != c.ww || h != c.wh {
			t.Fatalf("FitSize(%d,%d,%d,%d) = %d,%d want %d,%d", c.sw, c.sh, c.mw, c.mh, w, h, c.ww, c.wh)
		}
	}
}

func TestScaleProducesExactSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 36))
	dst := Scale(src, 32, 18)
	if dst == nil || dst.Bounds().Dx() != 32 || dst.Bounds().Dy() != 18 {
		t.Fatalf("unexpected scaled bounds: %v", dst.Bounds())
	}
}
