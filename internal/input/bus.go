package input

// Event is anything published on a Bus: KeyEvent, JoystickEvent, TouchEvent or PointerEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a physical key edge. Down is true on press, false on release.
type KeyEvent struct {
	Key  Key
	Down bool
}

// JoystickEvent is one sample of the on-screen stick. X and Y are already in [-1,1];
// Released marks the end of a gesture.
type JoystickEvent struct {
	X, Y     float32
	Released bool
}

// TouchPhase is the stage of a touch gesture.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
)

// TouchEvent is a sample of the primary touch point in screen pixels.
type TouchEvent struct {
	Phase TouchPhase
	X, Y  float32
}

// PointerEvent is a captured-pointer movement delta in pixels.
type PointerEvent struct {
	DX, DY float32
}

func (KeyEvent) isEvent()      {}
func (JoystickEvent) isEvent() {}
func (TouchEvent) isEvent()    {}
func (PointerEvent) isEvent()  {}

// HandlerFunc receives every event published on the bus it is subscribed to.
type HandlerFunc func(ev Event)

// Subscription identifies one registered handler. The zero value is never issued.
type Subscription uint64

// Bus dispatches input events synchronously, in subscription order, on the caller's goroutine.
// The frame loop and the platform adapter share one goroutine, so no locking is done.
type Bus struct {
	next     Subscription
	handlers map[Subscription]HandlerFunc
	order    []Subscription
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Subscription]HandlerFunc)}
}

// Subscribe registers fn and returns the handle used to remove it.
func (b *Bus) Subscribe(fn HandlerFunc) Subscription {
	b.next++
	b.handlers[b.next] = fn
	b.order = append(b.order, b.next)
	return b.next
}

// Unsubscribe removes the handler. Unknown or already-removed subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	if _, ok := b.handlers[sub]; !ok {
		return
	}
	delete(b.handlers, sub)
	for i, s := range b.order {
		if s == sub {
			b.order = append(b.order[:i:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	return len(b.handlers)
}

// Publish delivers ev to every handler. A handler may unsubscribe itself or others while
// the event is being delivered; removed handlers are not called afterwards.
func (b *Bus) Publish(ev Event) {
	subs := make([]Subscription, len(b.order))
	copy(subs, b.order)
	for _, s := range subs {
		if fn, ok := b.handlers[s]; ok {
			fn(ev)
		}
	}
}
