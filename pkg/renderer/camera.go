package renderer

import (
	"math"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

// Camera holds the viewport derivation and generates per-pixel sample
// rays, with thin-lens defocus when the defocus angle is positive.
type Camera struct {
	position     core.Vec3
	pixelOrigin  core.Vec3
	duVec        core.Vec3
	dvVec        core.Vec3
	defocusAngle float64
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera derives the camera and viewport from the tracer parameters
// and the integer image dimensions. Rows increase downward, so the
// vertical viewport vector is inverted.
func NewCamera(params TracerParams, width, height int) *Camera {
	worldUp := core.NewVec3(0, 1, 0)

	// Orthonormal camera basis
	viewDir := params.LookFrom.Subtract(params.LookAt).Normalize()
	viewRight := worldUp.Cross(viewDir).Normalize()
	viewUp := viewDir.Cross(viewRight)

	// Viewport sized from the actual integer aspect ratio, not the
	// requested one
	theta := params.Vfov * math.Pi / 180
	h := math.Tan(theta / 2)
	actualRatio := float64(width) / float64(height)
	viewHeight := 2 * h * params.FocusDistance
	viewWidth := viewHeight * actualRatio

	uVec := viewRight.Multiply(viewWidth)
	vVec := viewUp.Negate().Multiply(viewHeight)
	duVec := uVec.Divide(float64(width))
	dvVec := vVec.Divide(float64(height))

	upperLeft := params.LookFrom.
		Subtract(viewDir.Multiply(params.FocusDistance)).
		Subtract(uVec.Divide(2)).
		Subtract(vVec.Divide(2))
	pixelOrigin := upperLeft.Add(duVec.Add(dvVec).Multiply(0.5))

	defocusRadius := params.FocusDistance * math.Tan(params.DefocusAngle/2*math.Pi/180)

	return &Camera{
		position:     params.LookFrom,
		pixelOrigin:  pixelOrigin,
		duVec:        duVec,
		dvVec:        dvVec,
		defocusAngle: params.DefocusAngle,
		defocusDiskU: viewRight.Multiply(defocusRadius),
		defocusDiskV: viewUp.Multiply(defocusRadius),
	}
}

// GetRay generates a jittered sample ray through pixel (col, row).
// The ray origin is the camera position, or a point on the defocus disk
// when depth of field is enabled, and the ray time is uniform in [0,1).
func (c *Camera) GetRay(col, row int, sampler *core.Sampler) core.Ray {
	pixelCenter := c.pixelOrigin.
		Add(c.duVec.Multiply(float64(col))).
		Add(c.dvVec.Multiply(float64(row)))

	jitter := c.duVec.Multiply(sampler.Canonical() - 0.5).
		Add(c.dvVec.Multiply(sampler.Canonical() - 0.5))
	pixelSample := pixelCenter.Add(jitter)

	origin := c.position
	if c.defocusAngle > 0 {
		disk := sampler.InUnitDisk()
		origin = c.position.
			Add(c.defocusDiskU.Multiply(disk.X)).
			Add(c.defocusDiskV.Multiply(disk.Y))
	}

	direction := pixelSample.Subtract(origin).Normalize()

	return core.NewRayAt(origin, direction, sampler.Canonical())
}
