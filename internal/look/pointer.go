package look

import (
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/input"
)

// Pointer is the desktop pointer-capture look: captured mouse deltas turn yaw and pitch.
// The locomotion step never reads its angles; it only sees the camera's forward vector.
type Pointer struct {
	listener
	cam         Camera
	sensitivity float32
	yaw         float32
	pitch       float32
}

// NewPointer returns a pointer look controller. A non-positive sensitivity uses
// DefaultPointerSensitivity.
func NewPointer(cam Camera, sensitivity float32) *Pointer {
	if sensitivity <= 0 {
		sensitivity = DefaultPointerSensitivity
	}
	return &Pointer{cam: cam, sensitivity: sensitivity}
}

// Yaw returns the current yaw in [0, 2π).
func (p *Pointer) Yaw() float32 {
	return p.yaw
}

// Pitch returns the current pitch.
func (p *Pointer) Pitch() float32 {
	return p.pitch
}

// SetYaw sets the controlled object's heading, levels the pitch and applies both.
func (p *Pointer) SetYaw(yaw float32) {
	p.yaw = WrapAngle(yaw)
	p.pitch = 0
	p.apply()
}

// Attach subscribes to pointer events on bus.
func (p *Pointer) Attach(bus *input.Bus) {
	p.attach(bus, p.Handle)
}

// Detach unsubscribes.
func (p *Pointer) Detach() {
	p.detach()
}

// Handle applies one event; non-pointer events are ignored.
func (p *Pointer) Handle(ev input.Event) {
	e, ok := ev.(input.PointerEvent)
	if !ok {
		return
	}
	if e.DX == 0 && e.DY == 0 {
		return
	}
	p.yaw = WrapAngle(p.yaw - e.DX*p.sensitivity)
	p.pitch = mgl32.Clamp(p.pitch-e.DY*p.sensitivity, -maxPitch, maxPitch)
	p.apply()
}

func (p *Pointer) apply() {
	if p.cam == nil {
		return
	}
	p.cam.SetRotation(p.yaw, p.pitch, 0, mgl32.YXZ)
}
