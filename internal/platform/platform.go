package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/input"
	"showroom/internal/player"
)

// rlKeys maps physical key codes to raylib keys.
var rlKeys = map[input.Key]int32{
	input.KeyW:          rl.KeyW,
	input.KeyA:          rl.KeyA,
	input.KeyS:          rl.KeyS,
	input.KeyD:          rl.KeyD,
	input.KeyArrowUp:    rl.KeyUp,
	input.KeyArrowDown:  rl.KeyDown,
	input.KeyArrowLeft:  rl.KeyLeft,
	input.KeyArrowRight: rl.KeyRight,
}

// Stick zone placement, as fractions of the screen.
const (
	stickCenterX = 0.15
	stickCenterY = 0.75
	stickRadius  = 0.12
)

// Poller reads raylib input once per frame and publishes it on a bus as platform-neutral events.
type Poller struct {
	platform player.Platform
	keys     []input.Key
	router   input.TouchRouter
	points   []input.TouchPoint
}

// NewPoller returns a poller for the given variant. keys are the bound keys to watch on desktop.
func NewPoller(p player.Platform, keys input.KeyMap) *Poller {
	var watched []input.Key
	for _, k := range keys.Keys() {
		if _, ok := rlKeys[k]; ok {
			watched = append(watched, k)
		}
	}
	return &Poller{platform: p, keys: watched}
}

// Reset forgets tracked touches, e.g. after input was suspended.
func (p *Poller) Reset() {
	p.router.Reset()
}

// Poll publishes this frame's input. Call after window events are processed and before the
// session frame.
func (p *Poller) Poll(bus *input.Bus) {
	if p.platform == player.Touch {
		p.pollTouch(bus)
		return
	}
	for _, k := range p.keys {
		code := rlKeys[k]
		if rl.IsKeyPressed(code) {
			bus.Publish(input.KeyEvent{Key: k, Down: true})
		}
		if rl.IsKeyReleased(code) {
			bus.Publish(input.KeyEvent{Key: k, Down: false})
		}
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		bus.Publish(input.PointerEvent{DX: d.X, DY: d.Y})
	}
}

func (p *Poller) pollTouch(bus *input.Bus) {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	p.router.Stick = input.Stick{
		Center: mgl32.Vec2{w * stickCenterX, h * stickCenterY},
		Radius: min(w, h) * stickRadius,
	}
	p.points = p.points[:0]
	n := rl.GetTouchPointCount()
	for i := int32(0); i < n; i++ {
		pos := rl.GetTouchPosition(i)
		p.points = append(p.points, input.TouchPoint{ID: rl.GetTouchPointId(i), Pos: mgl32.Vec2{pos.X, pos.Y}})
	}
	p.router.Route(p.points, bus)
}

// DrawStick draws the on-screen joystick zone in touch mode.
func (p *Poller) DrawStick() {
	if p.platform != player.Touch {
		return
	}
	s := p.router.Stick
	rl.DrawCircleLines(int32(s.Center.X()), int32(s.Center.Y()), s.Radius, rl.LightGray)
}
