package geometry

import (
	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// HittableList is an unordered collection of hittables. Its intersection
// is the minimum-t intersection over its members and its bounding box is
// the union of theirs.
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{bbox: core.EmptyAABB()}
}

// Add appends an object and grows the list's bounding box
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Hit returns the nearest member intersection inside tRange.
// The iteration order does not affect the result: the valid range is
// narrowed to the closest hit found so far.
func (l *HittableList) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tRange.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of the member bounding boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
