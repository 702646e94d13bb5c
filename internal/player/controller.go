package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/input"
)

const (
	// DefaultSpeed is the walking speed in units per second.
	DefaultSpeed = 6.0
	// DefaultEyeHeight is the camera offset above the body's translation.
	DefaultEyeHeight = 0.7
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Body is the physics handle the controller drives. The controller never owns it.
type Body interface {
	Translation() mgl32.Vec3
	SetTranslation(p mgl32.Vec3, wake bool)
	LinearVelocity() mgl32.Vec3
	SetLinearVelocity(v mgl32.Vec3, wake bool)
	SetAngularVelocity(v mgl32.Vec3, wake bool)
	SetEnabledTranslations(x, y, z bool, wake bool)
}

// Camera is the render camera as seen by the controller.
type Camera interface {
	WorldForward() mgl32.Vec3
	SetPosition(p mgl32.Vec3)
	SetRotation(yaw, pitch, roll float32, order mgl32.RotationOrder)
}

// Command is the velocity issued to the body for one frame.
type Command struct {
	Velocity mgl32.Vec3
}

// Horizontal returns the command with its vertical component dropped.
func (c Command) Horizontal() mgl32.Vec3 {
	return mgl32.Vec3{c.Velocity.X(), 0, c.Velocity.Z()}
}

// Controller turns the per-frame intent into a velocity command relative to where the camera
// faces. Vertical velocity belongs to the physics engine and is passed through untouched.
type Controller struct {
	Speed     float32
	EyeHeight float32

	strategy Strategy
	body     Body
	camera   Camera

	// Per-frame scratch, owned by this controller.
	forward mgl32.Vec3
	right   mgl32.Vec3
	move    mgl32.Vec3
	last    Command
}

// NewController returns a controller reading intent from s. Body and camera are bound later
// with Bind; until then Step does nothing.
func NewController(s Strategy, speed, eyeHeight float32) *Controller {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Controller{
		Speed:     speed,
		EyeHeight: eyeHeight,
		strategy:  s,
		forward:   mgl32.Vec3{0, 0, -1},
	}
}

// Bind sets the body and camera handles. Either may be nil.
func (c *Controller) Bind(body Body, cam Camera) {
	c.body = body
	c.camera = cam
}

// Strategy returns the look-and-input strategy.
func (c *Controller) Strategy() Strategy {
	return c.strategy
}

// LastCommand returns the most recent command issued.
func (c *Controller) LastCommand() Command {
	return c.last
}

// Step runs the locomotion for one frame. elapsed and delta are accepted for the frame driver's
// signature only: the command is a velocity, so integrating it over delta is the physics
// engine's job. Step reports false and does nothing while the body or camera is missing.
func (c *Controller) Step(elapsed, delta float32) (Command, bool) {
	if c.body == nil || c.camera == nil || c.strategy == nil {
		return Command{}, false
	}

	f := c.camera.WorldForward()
	f[1] = 0
	// Looking straight up or down leaves no heading; keep the previous one.
	if f.LenSqr() > 1e-12 {
		c.forward = f.Normalize()
	}
	c.right = c.forward.Cross(worldUp).Normalize()

	c.move = compose(c.strategy.SampleIntent(), c.forward, c.right)
	if c.move.LenSqr() > 0 {
		c.move = c.move.Normalize().Mul(c.Speed)
	}

	vy := c.body.LinearVelocity().Y()
	cmd := Command{Velocity: mgl32.Vec3{c.move.X(), vy, c.move.Z()}}
	c.body.SetLinearVelocity(cmd.Velocity, true)
	c.last = cmd

	c.camera.SetPosition(c.body.Translation().Add(mgl32.Vec3{0, c.EyeHeight, 0}))
	return cmd, true
}

// compose sums unit contributions from the key flags and the joystick. Only one source is
// live per strategy, so this is the keyboard formula on desktop and the joystick formula on touch.
func compose(in input.Intent, forward, right mgl32.Vec3) mgl32.Vec3 {
	var m mgl32.Vec3
	if in.Forward {
		m = m.Add(forward)
	}
	if in.Backward {
		m = m.Sub(forward)
	}
	if in.Right {
		m = m.Add(right)
	}
	if in.Left {
		m = m.Sub(right)
	}
	m = m.Add(forward.Mul(in.Joystick.Y()))
	m = m.Add(right.Mul(in.Joystick.X()))
	return m
}
