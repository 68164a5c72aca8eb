// Package output writes rendered images to disk as ASCII PPM or PNG.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
	"github.com/rkuwahara/go-path-tracer/pkg/renderer"
)

const maxColorValue = 255

// WritePPM writes the image in the Netpbm P3 format: a text header
// followed by one gamma-corrected pixel per line in row-major order.
// Output is flushed once per row so partial files stay row-aligned
// during long renders.
func WritePPM(w io.Writer, img *renderer.Image) error {
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n%d\n", img.Width, img.Height, maxColorValue); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for i, pixel := range img.Pixels {
		r, g, b := QuantizeColor(pixel)
		if _, err := fmt.Fprintf(buffered, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("writing pixel %d: %w", i, err)
		}

		if (i+1)%img.Width == 0 {
			if err := buffered.Flush(); err != nil {
				return fmt.Errorf("flushing row: %w", err)
			}
		}
	}

	return buffered.Flush()
}

// QuantizeColor converts a linear color to 8-bit channels with gamma-2
// correction. Clamping to just under 1 before scaling by 256 keeps the
// result in [0, 255].
func QuantizeColor(c core.Color) (r, g, b int) {
	corrected := c.GammaCorrect().Clamp(0, 0.999)
	return int(corrected.R * 256), int(corrected.G * 256), int(corrected.B * 256)
}
