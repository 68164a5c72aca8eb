package material

import (
	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a lambertian material with a solid color
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in a cosine-weighted direction around the
// surface normal. Lambertian surfaces always scatter.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler *core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(sampler.UnitVector())

	// A unit sample opposite the normal cancels to a degenerate direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
	}, true
}
