package core

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB spanning two opposite corner points.
// The points may be any pair of opposite corners.
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(min(a.X, b.X), max(a.X, b.X)),
		Y: NewInterval(min(a.Y, b.Y), max(a.Y, b.Y)),
		Z: NewInterval(min(a.Z, b.Z), max(a.Z, b.Z)),
	}
}

// EmptyAABB returns a box that contains nothing
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// AxisInterval returns the interval for the given axis index (0=X, 1=Y, 2=Z)
func (box AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return box.X
	case 1:
		return box.Y
	default:
		return box.Z
	}
}

// LongestAxis returns the index of the axis with the greatest extent
func (box AABB) LongestAxis() int {
	axis := 0
	size := box.X.Size()
	if box.Y.Size() > size {
		axis = 1
		size = box.Y.Size()
	}
	if box.Z.Size() > size {
		axis = 2
	}
	return axis
}

// Union returns an AABB that bounds both this box and another
func (box AABB) Union(other AABB) AABB {
	return AABB{
		X: box.X.Combine(other.X),
		Y: box.Y.Combine(other.Y),
		Z: box.Z.Combine(other.Z),
	}
}

// Hit tests the ray against the box using the slab method.
// A zero direction component divides to ±Inf, which the comparisons
// handle without a special case.
func (box AABB) Hit(ray Ray, tRange Interval) bool {
	for axis := 0; axis < 3; axis++ {
		axisInterval := box.AxisInterval(axis)
		invDirection := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (axisInterval.Min - origin) * invDirection
		t1 := (axisInterval.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tRange.Min {
			tRange.Min = t0
		}
		if t1 < tRange.Max {
			tRange.Max = t1
		}
		if tRange.Min >= tRange.Max {
			return false
		}
	}
	return true
}
