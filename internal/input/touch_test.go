package input

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStickVector(t *testing.T) {
	s := Stick{Center: mgl32.Vec2{100, 500}, Radius: 50}
	tests := []struct {
		name string
		p    mgl32.Vec2
		want mgl32.Vec2
	}{
		{"center", mgl32.Vec2{100, 500}, mgl32.Vec2{0, 0}},
		{"half up", mgl32.Vec2{100, 475}, mgl32.Vec2{0, 0.5}},
		{"full right", mgl32.Vec2{150, 500}, mgl32.Vec2{1, 0}},
		{"past the rim down", mgl32.Vec2{100, 600}, mgl32.Vec2{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Vector(tt.p); !near(got, tt.want, 1e-6) {
				t.Errorf("Vector(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
	if s.Contains(mgl32.Vec2{100, 600}) {
		t.Error("Contains accepted a point outside the zone")
	}
}

func TestTouchRouter(t *testing.T) {
	bus := NewBus()
	var got []Event
	bus.Subscribe(func(ev Event) { got = append(got, ev) })
	r := &TouchRouter{Stick: Stick{Center: mgl32.Vec2{100, 500}, Radius: 50}}

	step := func(points []TouchPoint, want ...Event) {
		t.Helper()
		got = nil
		r.Route(points, bus)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("events = %#v, want %#v", got, want)
		}
	}

	// Stick touch, then a look drag with a second finger.
	step([]TouchPoint{{ID: 1, Pos: mgl32.Vec2{100, 475}}},
		JoystickEvent{X: 0, Y: 0.5})
	step([]TouchPoint{{ID: 1, Pos: mgl32.Vec2{100, 475}}, {ID: 2, Pos: mgl32.Vec2{600, 300}}},
		JoystickEvent{X: 0, Y: 0.5},
		TouchEvent{Phase: TouchStart, X: 600, Y: 300},
		TouchEvent{Phase: TouchMove, X: 600, Y: 300})
	// The look finger sliding into the stick zone still looks.
	step([]TouchPoint{{ID: 1, Pos: mgl32.Vec2{150, 500}}, {ID: 2, Pos: mgl32.Vec2{110, 500}}},
		JoystickEvent{X: 1, Y: 0},
		TouchEvent{Phase: TouchMove, X: 110, Y: 500})
	// A third finger is ignored while both roles are taken.
	step([]TouchPoint{{ID: 1, Pos: mgl32.Vec2{150, 500}}, {ID: 2, Pos: mgl32.Vec2{110, 500}}, {ID: 3, Pos: mgl32.Vec2{700, 100}}},
		JoystickEvent{X: 1, Y: 0},
		TouchEvent{Phase: TouchMove, X: 110, Y: 500})
	// Lifting the first two releases them; the remaining finger takes over look.
	step([]TouchPoint{{ID: 3, Pos: mgl32.Vec2{700, 100}}},
		JoystickEvent{Released: true},
		TouchEvent{Phase: TouchEnd},
		TouchEvent{Phase: TouchStart, X: 700, Y: 100},
		TouchEvent{Phase: TouchMove, X: 700, Y: 100})
	step(nil, TouchEvent{Phase: TouchEnd})
	step(nil)
}

func TestTouchRouterFirstTouchOutsideStickLooks(t *testing.T) {
	bus := NewBus()
	var got []Event
	bus.Subscribe(func(ev Event) { got = append(got, ev) })
	r := &TouchRouter{Stick: Stick{Center: mgl32.Vec2{100, 500}, Radius: 50}}

	r.Route([]TouchPoint{{ID: 7, Pos: mgl32.Vec2{400, 200}}}, bus)
	want := []Event{
		TouchEvent{Phase: TouchStart, X: 400, Y: 200},
		TouchEvent{Phase: TouchMove, X: 400, Y: 200},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %#v, want %#v", got, want)
	}
}

func near(a, b mgl32.Vec2, eps float32) bool {
	return a.Sub(b).Len() <= eps
}
