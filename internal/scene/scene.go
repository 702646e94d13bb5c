package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/camera"
	"showroom/internal/layout"
	"showroom/internal/radial"
)

const (
	gridExtent     = 70
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	fovy           = 60
)

var (
	wallColor  = rl.NewColor(140, 200, 230, 110)
	wallEdge   = rl.NewColor(200, 235, 255, 200)
	postColor  = rl.NewColor(90, 90, 100, 255)
	railColor  = rl.NewColor(170, 170, 170, 255)
	floorColor = rl.NewColor(30, 34, 38, 255)
)

// Scene draws the showroom geometry from the walker's camera. It renders debug geometry only:
// flat boxes for every collider and an editor grid on the floor.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	layout      layout.Layout
}

// New returns a scene for l with a perspective camera. Call Sync each frame to follow the walker.
func New(l layout.Layout) *Scene {
	s := &Scene{layout: l, GridVisible: true}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Sync copies the walker camera's pose into the raylib camera.
func (s *Scene) Sync(cam *camera.Camera) {
	s.Camera.Position = vec3(cam.Position())
	s.Camera.Target = vec3(cam.Target())
	s.Camera.Up = vec3(cam.Up())
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	f := s.layout.Floor
	rl.DrawCube(vec3(f.Position), 2*f.HalfExtents.X(), 2*f.HalfExtents.Y(), 2*f.HalfExtents.Z(), floorColor)
	if s.GridVisible {
		drawEditorGrid()
	}
	for _, seg := range s.layout.Guardrail {
		drawSegment(seg, railColor, rl.DarkGray)
	}
	for _, seg := range s.layout.Posts {
		drawSegment(seg, postColor, rl.Black)
	}
	for _, seg := range s.layout.Wall {
		drawSegment(seg, wallColor, wallEdge)
	}
	rl.EndMode3D()
}

// drawSegment draws a box rotated about +Y around its center.
func drawSegment(seg radial.Segment, fill, edge rl.Color) {
	size := seg.HalfExtents.Mul(2)
	rl.PushMatrix()
	rl.Translatef(seg.Position.X(), seg.Position.Y(), seg.Position.Z())
	rl.Rotatef(mgl32.RadToDeg(seg.RotationY), 0, 1, 0)
	rl.DrawCube(rl.Vector3{}, size.X(), size.Y(), size.Z(), fill)
	rl.DrawCubeWires(rl.Vector3{}, size.X(), size.Y(), size.Z(), edge)
	rl.PopMatrix()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	// Lift the grid off the floor box to avoid z-fighting.
	const y = 0.01
	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), y, 0
	end.X, end.Y, end.Z = float32(gridExtent), y, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, y, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, y, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
