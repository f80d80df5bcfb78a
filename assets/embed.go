package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// PosterPNG contains the raw PNG bytes of the fallback poster frame shown
// when no video source path is configured.
//
//go:embed poster.png
var PosterPNG []byte

// PosterImage decodes the embedded PNG into an image.Image.
func PosterImage() (image.Image, error) {
	if len(PosterPNG) == 0 {
		return nil, fmt.Errorf("embedded poster.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(PosterPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
