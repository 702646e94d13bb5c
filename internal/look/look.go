package look

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/input"
)

// DefaultTouchSensitivity is radians of yaw per pixel of horizontal drag.
const DefaultTouchSensitivity = 0.004

// DefaultPointerSensitivity is radians per pixel of captured pointer motion.
const DefaultPointerSensitivity = 0.002

// maxPitch keeps the pointer look just short of straight up/down so the horizontal
// forward basis never degenerates.
const maxPitch = math32.Pi/2 - 0.01

// Camera is the part of the render camera a look controller writes to.
type Camera interface {
	SetRotation(yaw, pitch, roll float32, order mgl32.RotationOrder)
}

// WrapAngle maps a to [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

// listener is the bus bookkeeping shared by both look controllers.
type listener struct {
	bus *input.Bus
	sub input.Subscription
}

func (l *listener) attach(bus *input.Bus, fn input.HandlerFunc) {
	if l.bus == bus && l.sub != 0 {
		return
	}
	l.detach()
	l.bus = bus
	l.sub = bus.Subscribe(fn)
}

func (l *listener) detach() {
	if l.bus != nil {
		l.bus.Unsubscribe(l.sub)
	}
	l.bus = nil
	l.sub = 0
}
