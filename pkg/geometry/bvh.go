package geometry

import (
	"sort"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// BVHNode is a node in a bounding volume hierarchy: a binary tree whose
// leaves hold single primitives and whose internal nodes hold the union
// box of their subtree. Building sorts primitives along the longest axis
// of the current union box and splits at the median.
type BVHNode struct {
	left  core.Hittable
	right core.Hittable
	bbox  core.AABB
}

// NewBVH builds a BVH over the given objects. The slice is copied so
// the caller's ordering is left untouched.
func NewBVH(objects []core.Hittable) *BVHNode {
	working := make([]core.Hittable, len(objects))
	copy(working, objects)
	return buildBVH(working)
}

func buildBVH(objects []core.Hittable) *BVHNode {
	bbox := core.EmptyAABB()
	for _, object := range objects {
		bbox = bbox.Union(object.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}

	switch len(objects) {
	case 0:
		// Children stay nil; the empty box rejects every ray before
		// either child is reached
	case 1:
		node.left = objects[0]
	case 2:
		node.left = objects[0]
		node.right = objects[1]
	default:
		axis := bbox.LongestAxis()
		sort.SliceStable(objects, func(i, j int) bool {
			a := objects[i].BoundingBox().AxisInterval(axis)
			b := objects[j].BoundingBox().AxisInterval(axis)
			return a.Min < b.Min
		})

		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid])
		node.right = buildBVH(objects[mid:])
	}

	return node
}

// Hit prunes the subtree with the node box, then tests both children.
// The right child's range is narrowed to the left hit's t, which cannot
// change the result: the nearer of the two hits is returned either way.
func (n *BVHNode) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	if !n.bbox.Hit(ray, tRange) {
		return nil, false
	}
	if n.left == nil {
		return nil, false
	}

	leftHit, leftOK := n.left.Hit(ray, tRange)

	rightRange := tRange
	if leftOK {
		rightRange.Max = leftHit.T
	}

	var rightHit *core.HitRecord
	var rightOK bool
	if n.right != nil {
		rightHit, rightOK = n.right.Hit(ray, rightRange)
	}

	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// BoundingBox returns the union box of the subtree
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
