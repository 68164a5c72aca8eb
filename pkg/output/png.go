package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/rkuwahara/go-path-tracer/pkg/renderer"
)

// WritePNG writes the image as a PNG. When resizeWidth is positive and
// smaller than the render width, the output is downscaled to that width
// with Lanczos resampling, keeping the aspect ratio.
func WritePNG(w io.Writer, img *renderer.Image, resizeWidth int) error {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			r, g, b := QuantizeColor(img.At(col, row))
			rgba.SetRGBA(col, row, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}

	var out image.Image = rgba
	if resizeWidth > 0 && resizeWidth < img.Width {
		out = resize.Resize(uint(resizeWidth), 0, rgba, resize.Lanczos3)
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
