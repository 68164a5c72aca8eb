// Package scene builds the renderable worlds and maps scene names to
// their builder functions.
package scene

import (
	"sort"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// Builder constructs a world from a sampler. Builders that place objects
// randomly draw from the sampler, so a fixed seed reproduces the scene.
type Builder func(sampler *core.Sampler) core.Hittable

// Registry maps scene names to builders
var Registry = map[string]Builder{
	"random-spheres":          RandomSpheres,
	"random-spheres-bouncing": RandomSpheresBouncing,
	"checkered-spheres":       CheckeredSpheres,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder for name. An unknown or empty name falls
// back to a random registered scene; the second return value is the
// name actually selected and the third reports whether the requested
// name was found.
func Lookup(name string, sampler *core.Sampler) (Builder, string, bool) {
	if builder, ok := Registry[name]; ok {
		return builder, name, true
	}

	names := Names()
	picked := names[int(sampler.Uniform(0, float64(len(names))))]
	return Registry[picked], picked, false
}
