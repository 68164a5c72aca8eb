package geometry

import (
	"math"
	"testing"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

func randomSpheres(sampler *core.Sampler, count int) []core.Hittable {
	objects := make([]core.Hittable, 0, count)
	for i := 0; i < count; i++ {
		center := sampler.Vec3InRange(-10, 10)
		radius := sampler.Uniform(0.1, 1.0)
		objects = append(objects, NewSphere(center, radius, nil))
	}
	return objects
}

// The BVH must return exactly the hit a linear scan over the same
// primitives returns.
func TestBVH_MatchesLinearScan(t *testing.T) {
	sampler := core.NewSampler(7)

	objects := randomSpheres(sampler, 200)
	bvh := NewBVH(objects)

	list := NewHittableList()
	for _, object := range objects {
		list.Add(object)
	}

	for i := 0; i < 1000; i++ {
		origin := sampler.Vec3InRange(-15, 15)
		direction := sampler.UnitVector()
		ray := core.NewRay(origin, direction)

		bvhHit, bvhOK := bvh.Hit(ray, universeRange())
		listHit, listOK := list.Hit(ray, universeRange())

		if bvhOK != listOK {
			t.Fatalf("ray %d: BVH hit=%v, linear scan hit=%v", i, bvhOK, listOK)
		}
		if bvhOK && math.Abs(bvhHit.T-listHit.T) > 1e-9 {
			t.Fatalf("ray %d: BVH t=%v, linear scan t=%v", i, bvhHit.T, listHit.T)
		}
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1, nil)
	bvh := NewBVH([]core.Hittable{sphere})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, universeRange())
	if !isHit {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-2) > tolerance {
		t.Errorf("expected t=2, got %v", hit.T)
	}
}

func TestBVH_TwoObjects(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	far := NewSphere(core.NewVec3(0, 0, -6), 0.5, nil)
	bvh := NewBVH([]core.Hittable{far, near})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, universeRange())
	if !isHit {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-1.5) > tolerance {
		t.Errorf("expected the nearer sphere at t=1.5, got %v", hit.T)
	}
}

func TestBVH_MissesOutsideBox(t *testing.T) {
	sampler := core.NewSampler(11)
	bvh := NewBVH(randomSpheres(sampler, 50))

	// All spheres live in [-11,11]³; a ray pointing away cannot hit
	ray := core.NewRay(core.NewVec3(0, 50, 0), core.NewVec3(0, 1, 0))
	if _, isHit := bvh.Hit(ray, universeRange()); isHit {
		t.Error("expected miss for ray leaving the scene")
	}
}

func TestBVH_EmptyInput(t *testing.T) {
	for _, objects := range [][]core.Hittable{nil, {}} {
		bvh := NewBVH(objects)
		if bvh == nil {
			t.Fatal("expected a node for empty input")
		}

		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
		if _, isHit := bvh.Hit(ray, universeRange()); isHit {
			t.Error("empty tree reported a hit")
		}

		box := bvh.BoundingBox()
		if box.X.Size() > 0 || box.Y.Size() > 0 || box.Z.Size() > 0 {
			t.Errorf("empty tree bounding box %+v is not empty", box)
		}
	}
}

func TestBVH_DoesNotMutateInput(t *testing.T) {
	sampler := core.NewSampler(13)
	objects := randomSpheres(sampler, 20)

	original := make([]core.Hittable, len(objects))
	copy(original, objects)

	NewBVH(objects)

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatal("BVH construction reordered the caller's slice")
		}
	}
}
