package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a first-person view: a world position plus yaw/pitch/roll Euler angles in radians.
// Yaw turns about +Y, pitch about +X, roll about +Z; with all angles zero the camera looks down -Z.
type Camera struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32
	roll     float32
	order    mgl32.RotationOrder
	rotation mgl32.Quat
	up       mgl32.Vec3
}

// New returns a camera at position looking down -Z with +Y up.
func New(position mgl32.Vec3) *Camera {
	return &Camera{
		position: position,
		order:    mgl32.YXZ,
		rotation: mgl32.QuatIdent(),
		up:       mgl32.Vec3{0, 1, 0},
	}
}

// Position returns the eye position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the eye.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

// Up returns the world up axis used for the view.
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Yaw returns the last applied yaw.
func (c *Camera) Yaw() float32 {
	return c.yaw
}

// Pitch returns the last applied pitch.
func (c *Camera) Pitch() float32 {
	return c.pitch
}

// SetRotation replaces the orientation. order names the axis sequence from outermost to
// innermost: mgl32.YXZ means R = Ry(yaw)·Rx(pitch)·Rz(roll), which keeps yaw a pure turn about
// world up. Only the six Tait-Bryan orders are accepted; anything else falls back to YXZ.
func (c *Camera) SetRotation(yaw, pitch, roll float32, order mgl32.RotationOrder) {
	c.yaw, c.pitch, c.roll = yaw, pitch, roll
	slots, ok := taitBryan[order]
	if !ok {
		order = mgl32.YXZ
		slots = taitBryan[order]
	}
	c.order = order
	angles := [3]float32{yaw, pitch, roll}
	c.rotation = mgl32.AnglesToQuat(angles[slots[0]], angles[slots[1]], angles[slots[2]], order).Normalize()
}

// Rotation returns the orientation quaternion.
func (c *Camera) Rotation() mgl32.Quat {
	return c.rotation
}

// WorldForward returns the unit view direction in world space.
func (c *Camera) WorldForward() mgl32.Vec3 {
	return c.rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Target returns a point one unit in front of the eye.
func (c *Camera) Target() mgl32.Vec3 {
	return c.position.Add(c.WorldForward())
}

// taitBryan maps each accepted order to the angle fed to each of its axes: 0 yaw, 1 pitch, 2 roll.
var taitBryan = map[mgl32.RotationOrder][3]int{
	mgl32.XYZ: {1, 0, 2},
	mgl32.XZY: {1, 2, 0},
	mgl32.YXZ: {0, 1, 2},
	mgl32.YZX: {0, 2, 1},
	mgl32.ZXY: {2, 1, 0},
	mgl32.ZYX: {2, 0, 1},
}
