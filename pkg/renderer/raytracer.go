package renderer

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// shadowAcneEpsilon is the mandatory lower bound on hit distances; it
// keeps scattered rays from re-hitting the surface they left.
const shadowAcneEpsilon = 0.001

// TracerParams contains the user-facing rendering parameters
type TracerParams struct {
	AspectRatio   float64
	Height        int
	SamplingRate  int // rays per pixel
	MaxDepth      int // maximum bounce depth
	Vfov          float64
	DefocusAngle  float64
	FocusDistance float64
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Seed          int64
}

// DefaultTracerParams returns the default render configuration
func DefaultTracerParams() TracerParams {
	return TracerParams{
		AspectRatio:   16.0 / 9.0,
		Height:        480,
		SamplingRate:  20,
		MaxDepth:      10,
		Vfov:          20.0,
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Seed:          42,
	}
}

// ProgressFunc receives (current, max) pixel counts at bounded intervals
type ProgressFunc func(current, max int)

// RayTracer integrates radiance over a scene into a pixel buffer
type RayTracer struct {
	width        int
	height       int
	camera       *Camera
	samplingRate int
	maxDepth     int
	seed         int64
	progress     ProgressFunc
}

// NewRayTracer validates the parameters and derives the camera.
// The image width follows from the height and the requested aspect
// ratio; the viewport uses the resulting integer ratio.
func NewRayTracer(params TracerParams) *RayTracer {
	width := int(math.Round(float64(params.Height) * params.AspectRatio))
	if width < 1 {
		width = 1
	}

	return &RayTracer{
		width:        width,
		height:       params.Height,
		camera:       NewCamera(params, width, params.Height),
		samplingRate: params.SamplingRate,
		maxDepth:     params.MaxDepth,
		seed:         params.Seed,
	}
}

// SetProgress installs a progress callback; nil disables reporting
func (rt *RayTracer) SetProgress(fn ProgressFunc) {
	rt.progress = fn
}

// Width returns the derived image width
func (rt *RayTracer) Width() int { return rt.width }

// Height returns the image height
func (rt *RayTracer) Height() int { return rt.height }

// Render renders the scene on the calling goroutine
func (rt *RayTracer) Render(scene core.Hittable) *Image {
	img := NewImage(rt.width, rt.height)
	sampler := core.NewSampler(rt.seed)
	total := rt.width * rt.height

	for row := 0; row < rt.height; row++ {
		for col := 0; col < rt.width; col++ {
			img.Set(col, row, rt.sampleColorAt(col, row, scene, sampler))
			rt.reportProgress(row*rt.width+col+1, total)
		}
	}

	return img
}

// pixelSample carries one finished pixel from a worker to the aggregator
type pixelSample struct {
	index int
	color core.Color
}

// RenderMulti renders the scene across one worker per CPU. Rows are
// interleaved across workers (worker i takes rows i, i+W, i+2W, ...) so
// variance-heavy regions spread evenly. Workers funnel finished pixels
// through a channel to a single aggregator, which is the only writer of
// the pixel buffer.
func (rt *RayTracer) RenderMulti(scene core.Hittable) *Image {
	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}

	results := make(chan pixelSample, rt.width*numWorkers)

	var group errgroup.Group
	for i := 0; i < numWorkers; i++ {
		workerID := i
		group.Go(func() error {
			// Independent stream per worker
			sampler := core.NewSampler(rt.seed + int64(workerID)*workerSeedStride)

			workerRows := 0
			for row := workerID; row < rt.height; row += numWorkers {
				workerRows++
			}
			workerTotal := workerRows * rt.width

			done := 0
			for row := workerID; row < rt.height; row += numWorkers {
				for col := 0; col < rt.width; col++ {
					results <- pixelSample{
						index: row*rt.width + col,
						color: rt.sampleColorAt(col, row, scene, sampler),
					}

					// Only the first worker reports; its share tracks
					// overall completion closely under interleaving
					done++
					if workerID == 0 {
						rt.reportProgress(done, workerTotal)
					}
				}
			}
			return nil
		})
	}

	go func() {
		// Workers hold no external resources; a failed render aborts
		// the process before the image is consumed
		_ = group.Wait()
		close(results)
	}()

	img := NewImage(rt.width, rt.height)
	for sample := range results {
		img.Pixels[sample.index] = sample.color
	}

	return img
}

// workerSeedStride separates per-worker RNG streams
const workerSeedStride = 0x9E3779B9

func (rt *RayTracer) reportProgress(current, max int) {
	if rt.progress != nil {
		rt.progress(current, max)
	}
}

// sampleColorAt averages samplingRate radiance samples for one pixel
// and clamps the result to [0,1] per channel
func (rt *RayTracer) sampleColorAt(col, row int, scene core.Hittable, sampler *core.Sampler) core.Color {
	accumulated := core.Black

	for sample := 0; sample < rt.samplingRate; sample++ {
		ray := rt.camera.GetRay(col, row, sampler)
		accumulated = accumulated.Add(rt.rayColor(ray, scene, sampler))
	}

	return accumulated.Multiply(1.0 / float64(rt.samplingRate)).Clamp(0, 1)
}

// rayColor integrates radiance along a ray with a running throughput
// accumulator instead of recursion, so large depth limits cannot grow
// the stack. The loop ends on depth exhaustion, absorption, or the sky.
func (rt *RayTracer) rayColor(ray core.Ray, scene core.Hittable, sampler *core.Sampler) core.Color {
	throughput := core.White

	for depth := rt.maxDepth; depth > 0; depth-- {
		hit, isHit := scene.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
		if !isHit {
			return throughput.MultiplyColor(rt.backgroundGradient(ray))
		}

		if hit.Material == nil {
			// Debug shading for primitives without a material
			normalColor := core.ColorFromVec3(hit.Normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)))
			return throughput.MultiplyColor(normalColor)
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return core.Black
		}

		throughput = throughput.MultiplyColor(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Black
}

// backgroundGradient is the sky: a vertical blend from white at the
// horizon to light blue overhead
func (rt *RayTracer) backgroundGradient(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return core.White.Lerp(core.NewColor(0.5, 0.7, 1.0), a)
}
