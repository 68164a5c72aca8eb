package core

// Hittable is anything a ray can intersect. Hit returns the nearest
// intersection with t strictly inside tRange, or (nil, false) on a miss.
type Hittable interface {
	Hit(ray Ray, tRange Interval) (*HitRecord, bool)
	BoundingBox() AABB
}

// Material decides how an incoming ray scatters at a hit point.
// It returns (result, false) when the ray is absorbed.
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, sampler *Sampler) (ScatterResult, bool)
}

// Texture provides a color lookup at surface coordinates and a 3D point.
// UV drives surface-mapped textures, the point drives procedural ones.
type Texture interface {
	Value(uv Vec2, point Vec3) Color
}

// ScatterResult contains the outgoing ray and its color attenuation
type ScatterResult struct {
	Scattered   Ray
	Attenuation Color
}

// HitRecord contains the geometry of a ray-surface intersection.
// Material is nil for primitives without one; the integrator falls back
// to normal-based debug shading in that case.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	UV        Vec2
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal stores the normal flipped against the incoming ray and
// records whether the hit came from the outside.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
