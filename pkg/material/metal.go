package material

import (
	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// Metal represents a reflective material with optional fuzz
type Metal struct {
	Albedo core.Color
	Fuzz   float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0,1]
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter mirrors the ray about the normal, perturbed by the fuzz radius.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(sampler.InUnitSphere().Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}
