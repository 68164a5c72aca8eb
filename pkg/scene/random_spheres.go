package scene

import (
	"github.com/rkuwahara/go-path-tracer/pkg/core"
	"github.com/rkuwahara/go-path-tracer/pkg/geometry"
	"github.com/rkuwahara/go-path-tracer/pkg/material"
)

// RandomSpheres builds the classic field of small random spheres around
// three large ones, on a gray diffuse ground sphere.
func RandomSpheres(sampler *core.Sampler) core.Hittable {
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for _, sphere := range smallSpheres(sampler, false) {
		world.Add(sphere)
	}

	addLargeSpheres(world)

	return world
}

// RandomSpheresBouncing is the same field with a checkered ground and
// the diffuse spheres bouncing upward over the shutter interval. The
// object set is large enough that it is wrapped in a BVH root.
func RandomSpheresBouncing(sampler *core.Sampler) core.Hittable {
	objects := geometry.NewHittableList()

	checker := material.NewCheckerTextureFromColors(0.32,
		core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))
	objects.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewTexturedLambertian(checker)))

	for _, sphere := range smallSpheres(sampler, true) {
		objects.Add(sphere)
	}

	addLargeSpheres(objects)

	world := geometry.NewHittableList()
	world.Add(geometry.NewBVH(objects.Objects))
	return world
}

// CheckeredSpheres builds two large checker-textured spheres facing
// each other across the origin.
func CheckeredSpheres(sampler *core.Sampler) core.Hittable {
	checker := material.NewCheckerTextureFromColors(0.32,
		core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))

	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10,
		material.NewTexturedLambertian(checker)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10,
		material.NewTexturedLambertian(checker)))
	return world
}

// smallSpheres scatters little spheres across a grid with jittered
// positions and randomly chosen materials. When moving is true, the
// diffuse ones drift upward between time 0 and 1.
func smallSpheres(sampler *core.Sampler, moving bool) []*geometry.Sphere {
	var spheres []*geometry.Sphere

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*sampler.Canonical(),
				0.2,
				float64(b)+0.9*sampler.Canonical(),
			)

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMaterial := sampler.Canonical()
			switch {
			case chooseMaterial < 0.8:
				albedo := sampler.ColorInRange(0, 1).MultiplyColor(sampler.ColorInRange(0, 1))
				mat := material.NewLambertian(albedo)
				if moving {
					center2 := center.Add(core.NewVec3(0, sampler.Uniform(0, 0.5), 0))
					spheres = append(spheres, geometry.NewMovingSphere(center, center2, 0.2, mat))
				} else {
					spheres = append(spheres, geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMaterial < 0.95:
				albedo := sampler.ColorInRange(0.5, 1)
				fuzz := sampler.Uniform(0, 0.5)
				spheres = append(spheres, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				spheres = append(spheres, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	return spheres
}

func addLargeSpheres(world *geometry.HittableList) {
	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1,
		material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1,
		material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)))
}
