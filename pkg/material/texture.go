package material

import (
	"math"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// SolidColor is a texture with a uniform color everywhere
type SolidColor struct {
	Albedo core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(albedo core.Color) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Color {
	return s.Albedo
}

// CheckerTexture is a 3D procedural checker pattern alternating between
// two textures based on the integer lattice cell of the hit point
type CheckerTexture struct {
	invScale float64
	even     core.Texture
	odd      core.Texture
}

// NewCheckerTexture creates a checker pattern from two textures.
// Scale is the edge length of one checker cell.
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1.0 / scale, even: even, odd: odd}
}

// NewCheckerTextureFromColors creates a checker pattern from two solid colors
func NewCheckerTextureFromColors(scale float64, even, odd core.Color) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value alternates between the two textures by the parity of the sum of
// the floored scaled point coordinates
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Color {
	sum := int(math.Floor(point.X*c.invScale)) +
		int(math.Floor(point.Y*c.invScale)) +
		int(math.Floor(point.Z*c.invScale))

	if sum%2 == 0 {
		return c.even.Value(uv, point)
	}
	return c.odd.Value(uv, point)
}
