package input

import "github.com/go-gl/mathgl/mgl32"

// Source selects which device feeds an Aggregator. Exactly one is active per aggregator.
type Source int

const (
	SourceKeyboard Source = iota
	SourceJoystick
)

// Intent is the directional state read once per frame by the locomotion step.
// Joystick is in [-1,1]² as reported by the device and is never re-normalized here.
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Joystick mgl32.Vec2
}

// Idle reports whether no direction is requested.
func (i Intent) Idle() bool {
	return !i.Forward && !i.Backward && !i.Left && !i.Right && i.Joystick[0] == 0 && i.Joystick[1] == 0
}

// Aggregator merges key edges or joystick samples into an Intent. Events from the inactive
// source are dropped, so keyboard flags and a joystick vector are never set together.
type Aggregator struct {
	source Source
	keys   KeyMap
	intent Intent

	bus *Bus
	sub Subscription
}

// NewAggregator returns an aggregator for the given source. A nil keys map uses DefaultKeyMap.
func NewAggregator(source Source, keys KeyMap) *Aggregator {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Aggregator{source: source, keys: keys}
}

// Source returns the device this aggregator listens to.
func (a *Aggregator) Source() Source {
	return a.source
}

// Intent returns a snapshot of the current state.
func (a *Aggregator) Intent() Intent {
	return a.intent
}

// Reset clears every flag and the joystick vector.
func (a *Aggregator) Reset() {
	a.intent = Intent{}
}

// Attach subscribes to bus. Attaching again to the same bus is a no-op; attaching to a
// different bus detaches from the old one first.
func (a *Aggregator) Attach(bus *Bus) {
	if a.bus == bus && a.sub != 0 {
		return
	}
	a.Detach()
	a.bus = bus
	a.sub = bus.Subscribe(a.Handle)
}

// Detach unsubscribes. Safe to call any number of times.
func (a *Aggregator) Detach() {
	if a.bus != nil {
		a.bus.Unsubscribe(a.sub)
	}
	a.bus = nil
	a.sub = 0
}

// Attached reports whether the aggregator is currently listening.
func (a *Aggregator) Attached() bool {
	return a.sub != 0
}

// Handle applies one event. It is the bus handler but can be called directly.
func (a *Aggregator) Handle(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		if a.source != SourceKeyboard {
			return
		}
		d, ok := a.keys[e.Key]
		if !ok {
			return
		}
		a.setDirection(d, e.Down)
	case JoystickEvent:
		if a.source != SourceJoystick {
			return
		}
		if e.Released {
			a.intent.Joystick = mgl32.Vec2{}
			return
		}
		a.intent.Joystick = mgl32.Vec2{e.X, e.Y}
	}
}

func (a *Aggregator) setDirection(d Direction, down bool) {
	switch d {
	case Forward:
		a.intent.Forward = down
	case Backward:
		a.intent.Backward = down
	case Left:
		a.intent.Left = down
	case Right:
		a.intent.Right = down
	}
}
