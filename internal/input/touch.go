package input

import "github.com/go-gl/mathgl/mgl32"

// Stick is an on-screen joystick: a circular zone that turns a touch held inside it into a
// joystick vector. Screen Y grows downward, so pushing up gives a positive Y (forward).
type Stick struct {
	Center mgl32.Vec2
	Radius float32
}

// Contains reports whether p falls inside the zone.
func (s Stick) Contains(p mgl32.Vec2) bool {
	return s.Radius > 0 && p.Sub(s.Center).Len() <= s.Radius
}

// Vector returns the joystick vector for a touch at p, clamped to the unit disc.
func (s Stick) Vector(p mgl32.Vec2) mgl32.Vec2 {
	if s.Radius <= 0 {
		return mgl32.Vec2{}
	}
	d := mgl32.Vec2{(p.X() - s.Center.X()) / s.Radius, (s.Center.Y() - p.Y()) / s.Radius}
	if l := d.Len(); l > 1 {
		d = d.Mul(1 / l)
	}
	return d
}

// TouchPoint is one raw touch sample from the platform.
type TouchPoint struct {
	ID  int32
	Pos mgl32.Vec2
}

// TouchRouter splits raw touch points between the on-screen stick and look drags. A touch that
// starts inside the stick zone drives the stick until lifted; the first other touch drives look.
// Further touches are ignored.
type TouchRouter struct {
	Stick Stick

	stickID  int32
	sticking bool
	lookID   int32
	looking  bool
}

// Route publishes the events implied by the current set of touch points.
func (r *TouchRouter) Route(points []TouchPoint, bus *Bus) {
	if r.sticking {
		if p, ok := find(points, r.stickID); ok {
			v := r.Stick.Vector(p)
			bus.Publish(JoystickEvent{X: v.X(), Y: v.Y()})
		} else {
			r.sticking = false
			bus.Publish(JoystickEvent{Released: true})
		}
	}
	if r.looking {
		if p, ok := find(points, r.lookID); ok {
			bus.Publish(TouchEvent{Phase: TouchMove, X: p.X(), Y: p.Y()})
		} else {
			r.looking = false
			bus.Publish(TouchEvent{Phase: TouchEnd})
		}
	}

	for _, tp := range points {
		if (r.sticking && tp.ID == r.stickID) || (r.looking && tp.ID == r.lookID) {
			continue
		}
		switch {
		case !r.sticking && r.Stick.Contains(tp.Pos):
			r.sticking, r.stickID = true, tp.ID
			v := r.Stick.Vector(tp.Pos)
			bus.Publish(JoystickEvent{X: v.X(), Y: v.Y()})
		case !r.looking:
			r.looking, r.lookID = true, tp.ID
			bus.Publish(TouchEvent{Phase: TouchStart, X: tp.Pos.X(), Y: tp.Pos.Y()})
			bus.Publish(TouchEvent{Phase: TouchMove, X: tp.Pos.X(), Y: tp.Pos.Y()})
		}
	}
}

// Reset forgets tracked touches without publishing anything.
func (r *TouchRouter) Reset() {
	r.sticking = false
	r.looking = false
}

func find(points []TouchPoint, id int32) (mgl32.Vec2, bool) {
	for _, tp := range points {
		if tp.ID == id {
			return tp.Pos, true
		}
	}
	return mgl32.Vec2{}, false
}
