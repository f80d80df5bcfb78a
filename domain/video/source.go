// Package video supplies frames to the selection surface. Decoding and
// acquisition live here; the selection core only ever sees frame geometry.
package video

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// FrameSnapshot is one decoded frame plus acquisition metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// FrameSource provides read-only access to the latest frame. NativeSize
// reports the intrinsic resolution, or (0, 0) until metadata is known.
type FrameSource interface {
	Start()
	Stop()
	Running() bool
	LatestFrame() FrameSnapshot
	NativeSize() (w, h int)
}

// SourceStats carries acquisition instrumentation for live sources.
type SourceStats struct {
	Frames         uint64
	Skipped        uint64
	AvgAcquire     time.Duration
	LastFrame      time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// decodeRGBA loads and decodes one image file into RGBA. Registered formats:
// png, jpeg, bmp, webp.
func decodeRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return toRGBA(img), nil
}

// decodeRGBABytes decodes an in-memory image, typically embedded assets.
func decodeRGBABytes(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode embedded image: %w", err)
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
