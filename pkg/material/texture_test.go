package material

import (
	"testing"

	"github.com/rkuwahara/go-path-tracer/pkg/core"
)

func TestSolidColor_IgnoresCoordinates(t *testing.T) {
	solid := NewSolidColor(core.NewColor(0.1, 0.2, 0.3))

	a := solid.Value(core.NewVec2(0, 0), core.NewVec3(0, 0, 0))
	b := solid.Value(core.NewVec2(0.9, 0.1), core.NewVec3(100, -40, 7))
	if a != b || a != core.NewColor(0.1, 0.2, 0.3) {
		t.Errorf("solid color varied: %v vs %v", a, b)
	}
}

func TestCheckerTexture_Alternates(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	green := core.NewColor(0, 1, 0)
	checker := NewCheckerTextureFromColors(1.0, red, green)
	uv := core.NewVec2(0, 0)

	// Parity of the summed floored coordinates decides the color
	cases := []struct {
		point core.Vec3
		want  core.Color
	}{
		{core.NewVec3(0.5, 0.5, 0.5), red},    // 0+0+0 even
		{core.NewVec3(1.5, 0.5, 0.5), green},  // 1+0+0 odd
		{core.NewVec3(1.5, 1.5, 0.5), red},    // 1+1+0 even
		{core.NewVec3(-0.5, 0.5, 0.5), green}, // -1+0+0 odd
		{core.NewVec3(-0.5, -0.5, 0.5), red},  // -1-1+0 even
	}

	for _, tt := range cases {
		if got := checker.Value(uv, tt.point); got != tt.want {
			t.Errorf("Value(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestCheckerTexture_ScaleSetsCellSize(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	green := core.NewColor(0, 1, 0)
	checker := NewCheckerTextureFromColors(2.0, red, green)
	uv := core.NewVec2(0, 0)

	// Cells are two units wide: 0.5 and 1.5 share a cell, 2.5 does not
	if checker.Value(uv, core.NewVec3(0.5, 0, 0)) != checker.Value(uv, core.NewVec3(1.5, 0, 0)) {
		t.Error("points in the same cell disagreed")
	}
	if checker.Value(uv, core.NewVec3(0.5, 0, 0)) == checker.Value(uv, core.NewVec3(2.5, 0, 0)) {
		t.Error("points in adjacent cells agreed")
	}
}
