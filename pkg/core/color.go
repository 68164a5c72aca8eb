package core

import "math"

// Color represents an RGB color with linear float components.
// It shares Vec3's arithmetic but is a distinct type so colors and
// positions cannot be mixed up at call sites.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// White and Black are the common gradient endpoints
var (
	White = Color{R: 1, G: 1, B: 1}
	Black = Color{}
)

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns component-wise multiplication (attenuation)
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp linearly interpolates between c and other by t
func (c Color) Lerp(other Color, t float64) Color {
	return c.Multiply(1 - t).Add(other.Multiply(t))
}

// Clamp returns a color with components clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: math.Max(minVal, math.Min(maxVal, c.R)),
		G: math.Max(minVal, math.Min(maxVal, c.G)),
		B: math.Max(minVal, math.Min(maxVal, c.B)),
	}
}

// GammaCorrect applies the gamma-2 approximation (square root per channel)
func (c Color) GammaCorrect() Color {
	return Color{
		R: linearToGamma(c.R),
		G: linearToGamma(c.G),
		B: linearToGamma(c.B),
	}
}

func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ColorFromVec3 converts a vector to a color component-wise,
// used for normal-based debug shading
func ColorFromVec3(v Vec3) Color {
	return Color{R: v.X, G: v.Y, B: v.Z}
}
