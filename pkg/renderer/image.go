package renderer

import (
	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// Image is a row-major buffer of linear RGB pixels in [0,1].
// Gamma correction and quantization happen at write time.
type Image struct {
	Pixels []core.Color
	Width  int
	Height int
}

// NewImage creates a black image of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		Pixels: make([]core.Color, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the pixel at (col, row)
func (img *Image) At(col, row int) core.Color {
	return img.Pixels[row*img.Width+col]
}

// Set writes the pixel at (col, row)
func (img *Image) Set(col, row int, color core.Color) {
	img.Pixels[row*img.Width+col] = color
}
