package look

import (
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/input"
)

// Touch turns horizontal drags of the primary touch point into yaw. It owns the yaw and
// writes it to the camera with pitch and roll forced to zero.
type Touch struct {
	listener
	cam         Camera
	sensitivity float32
	yaw         float32
	prevX       float32
	hasPrev     bool
}

// NewTouch returns a touch look controller. A non-positive sensitivity uses DefaultTouchSensitivity.
func NewTouch(cam Camera, sensitivity float32) *Touch {
	if sensitivity <= 0 {
		sensitivity = DefaultTouchSensitivity
	}
	return &Touch{cam: cam, sensitivity: sensitivity}
}

// Yaw returns the current yaw in [0, 2π).
func (t *Touch) Yaw() float32 {
	return t.yaw
}

// SetYaw replaces the yaw and applies it to the camera.
func (t *Touch) SetYaw(yaw float32) {
	t.yaw = WrapAngle(yaw)
	t.apply()
}

// Attach subscribes to touch events on bus.
func (t *Touch) Attach(bus *input.Bus) {
	t.attach(bus, t.Handle)
}

// Detach unsubscribes and forgets any gesture in progress.
func (t *Touch) Detach() {
	t.detach()
	t.hasPrev = false
}

// Handle applies one event; non-touch events are ignored.
func (t *Touch) Handle(ev input.Event) {
	e, ok := ev.(input.TouchEvent)
	if !ok {
		return
	}
	switch e.Phase {
	case input.TouchStart, input.TouchEnd:
		t.hasPrev = false
	case input.TouchMove:
		if !t.hasPrev {
			// First sample of a gesture only anchors the drag.
			t.prevX = e.X
			t.hasPrev = true
			return
		}
		dx := e.X - t.prevX
		t.prevX = e.X
		t.yaw = WrapAngle(t.yaw - dx*t.sensitivity)
		t.apply()
	}
}

func (t *Touch) apply() {
	if t.cam == nil {
		return
	}
	t.cam.SetRotation(t.yaw, 0, 0, mgl32.YXZ)
}
