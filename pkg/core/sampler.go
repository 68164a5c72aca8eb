package core

import "math/rand"

// Sampler wraps a random source with the sampling primitives the tracer
// needs. Each worker owns its own Sampler; instances are not safe for
// concurrent use.
type Sampler struct {
	random *rand.Rand
}

// NewSampler creates a deterministic sampler from a seed
func NewSampler(seed int64) *Sampler {
	return &Sampler{random: rand.New(rand.NewSource(seed))}
}

// Canonical returns a random float64 in [0, 1)
func (s *Sampler) Canonical() float64 {
	return s.random.Float64()
}

// Uniform returns a random float64 in [min, max)
func (s *Sampler) Uniform(min, max float64) float64 {
	return min + (max-min)*s.random.Float64()
}

// InUnitSphere returns a random point inside the unit ball,
// by rejection sampling from the enclosing cube
func (s *Sampler) InUnitSphere() Vec3 {
	for {
		p := Vec3{
			X: s.Uniform(-1, 1),
			Y: s.Uniform(-1, 1),
			Z: s.Uniform(-1, 1),
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// UnitVector returns a random unit vector, uniform over the sphere surface
func (s *Sampler) UnitVector() Vec3 {
	return s.InUnitSphere().Normalize()
}

// InUnitDisk returns a random point in the unit disk (z = 0),
// by rejection sampling from the enclosing square
func (s *Sampler) InUnitDisk() Vec3 {
	for {
		p := Vec3{X: s.Uniform(-1, 1), Y: s.Uniform(-1, 1)}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// Vec3InRange returns a vector with each component uniform in [min, max)
func (s *Sampler) Vec3InRange(min, max float64) Vec3 {
	return Vec3{
		X: s.Uniform(min, max),
		Y: s.Uniform(min, max),
		Z: s.Uniform(min, max),
	}
}

// ColorInRange returns a color with each channel uniform in [min, max)
func (s *Sampler) ColorInRange(min, max float64) Color {
	return Color{
		R: s.Uniform(min, max),
		G: s.Uniform(min, max),
		B: s.Uniform(min, max),
	}
}
