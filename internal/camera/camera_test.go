package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestWorldForward(t *testing.T) {
	tests := []struct {
		name  string
		yaw   float32
		pitch float32
		want  mgl32.Vec3
	}{
		{"identity looks down -Z", 0, 0, mgl32.Vec3{0, 0, -1}},
		{"yaw pi looks down +Z", math32.Pi, 0, mgl32.Vec3{0, 0, 1}},
		{"yaw half pi turns left", math32.Pi / 2, 0, mgl32.Vec3{-1, 0, 0}},
		{"pitch up", 0, math32.Pi / 4, mgl32.Vec3{0, math32.Sqrt(2) / 2, -math32.Sqrt(2) / 2}},
		{"yaw then pitch", math32.Pi, math32.Pi / 4, mgl32.Vec3{0, math32.Sqrt(2) / 2, math32.Sqrt(2) / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(mgl32.Vec3{})
			c.SetRotation(tt.yaw, tt.pitch, 0, mgl32.YXZ)
			if got := c.WorldForward(); !near(got, tt.want, 1e-5) {
				t.Errorf("WorldForward() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetRotationOrderMatters(t *testing.T) {
	yxz := New(mgl32.Vec3{})
	yxz.SetRotation(math32.Pi/2, math32.Pi/4, 0, mgl32.YXZ)
	xyz := New(mgl32.Vec3{})
	xyz.SetRotation(math32.Pi/2, math32.Pi/4, 0, mgl32.XYZ)
	if near(yxz.WorldForward(), xyz.WorldForward(), 1e-4) {
		t.Fatal("YXZ and XYZ produced the same forward for a combined yaw+pitch")
	}
	// With yaw outermost, pitch never leaks into the horizontal heading.
	f := yxz.WorldForward()
	h := mgl32.Vec3{f.X(), 0, f.Z()}.Normalize()
	if !near(h, mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("horizontal heading = %v, want (-1,0,0)", h)
	}
}

func TestSetRotationComposesYawPitchRoll(t *testing.T) {
	var yaw, pitch, roll float32 = math32.Pi / 2, math32.Pi / 4, math32.Pi / 3
	c := New(mgl32.Vec3{})
	c.SetRotation(yaw, pitch, roll, mgl32.YXZ)
	want := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})).
		Mul(mgl32.QuatRotate(roll, mgl32.Vec3{0, 0, 1}))
	for _, v := range []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}} {
		if got, exp := c.Rotation().Rotate(v), want.Rotate(v); !near(got, exp, 1e-5) {
			t.Errorf("Rotate(%v) = %v, want %v", v, got, exp)
		}
	}
	if c.order != mgl32.YXZ {
		t.Errorf("order = %v, want YXZ", c.order)
	}
}

func TestSetRotationUnknownOrderFallsBack(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.SetRotation(math32.Pi, 0, 0, mgl32.XYX)
	if got := c.WorldForward(); !near(got, mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("WorldForward() = %v, want (0,0,1)", got)
	}
	if c.order != mgl32.YXZ {
		t.Errorf("order = %v, want YXZ", c.order)
	}
}

func TestTarget(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3})
	if got := c.Target(); !near(got, mgl32.Vec3{1, 2, 2}, 1e-6) {
		t.Errorf("Target() = %v, want (1,2,2)", got)
	}
}

// near compares by absolute distance; mgl32's ApproxEqualThreshold is relative and rejects
// float noise against an exact zero.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}
