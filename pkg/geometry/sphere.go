package geometry

import (
	"math"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// Sphere represents a sphere, optionally moving linearly over the
// shutter interval [0,1]. A negative radius is accepted and flips the
// outward normal, which authors use for hollow surfaces.
type Sphere struct {
	Center    core.Vec3
	Radius    float64
	Material  core.Material
	centerVec core.Vec3
	isMoving  bool
	bbox      core.AABB
}

// NewSphere creates a static sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		bbox:     sphereBox(center, radius),
	}
}

// NewMovingSphere creates a sphere that moves from center1 at time 0 to
// center2 at time 1. Its bounding box spans both endpoints.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:    center1,
		Radius:    radius,
		Material:  material,
		centerVec: center2.Subtract(center1),
		isMoving:  true,
		bbox:      sphereBox(center1, radius).Union(sphereBox(center2, radius)),
	}
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABBFromPoints(center.Subtract(extent), center.Add(extent))
}

// centerAt returns the sphere center at the given ray time
func (s *Sphere) centerAt(time float64) core.Vec3 {
	if !s.isMoving {
		return s.Center
	}
	return s.Center.Add(s.centerVec.Multiply(time))
}

// Hit tests if a ray intersects the sphere within tRange
func (s *Sphere) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	// Quadratic coefficients with b = 2h
	a := ray.Direction.LengthSquared()
	h := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Prefer the nearer root; fall back to the farther one
	sqrtD := math.Sqrt(discriminant)
	root := (-h - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (-h + sqrtD) / a
		if !tRange.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Divide(s.Radius)

	hit := &core.HitRecord{
		T:        root,
		Point:    point,
		UV:       sphereUV(outwardNormal),
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to (u,v) texture coordinates,
// with u from the azimuth around the Y axis and v from the polar angle
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
