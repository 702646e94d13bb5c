package player

import (
	"fmt"

	"showroom/internal/input"
	"showroom/internal/look"
)

// Platform names a look-and-input variant.
type Platform string

const (
	Desktop Platform = "desktop"
	Touch   Platform = "touch"
)

// ParsePlatform accepts "desktop" or "touch".
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case Desktop, Touch:
		return Platform(s), nil
	}
	return "", fmt.Errorf("player: unknown platform %q", s)
}

// Strategy is one look-and-input variant, picked once at construction.
type Strategy interface {
	Platform() Platform
	Attach(bus *input.Bus)
	Detach()
	// SampleIntent returns the directional intent for this frame.
	SampleIntent() input.Intent
	// SampleYaw returns the yaw the look controller last applied.
	SampleYaw() float32
	// SetYaw points the view, used at spawn.
	SetYaw(yaw float32)
	// ResetIntent drops held keys or a held stick.
	ResetIntent()
}

// DesktopStrategy reads keyboard edges and looks with the captured pointer.
type DesktopStrategy struct {
	keys *input.Aggregator
	look *look.Pointer
}

// NewDesktop returns the keyboard + pointer variant writing to cam.
func NewDesktop(cam look.Camera, keys input.KeyMap, sensitivity float32) *DesktopStrategy {
	return &DesktopStrategy{
		keys: input.NewAggregator(input.SourceKeyboard, keys),
		look: look.NewPointer(cam, sensitivity),
	}
}

func (d *DesktopStrategy) Platform() Platform { return Desktop }

func (d *DesktopStrategy) Attach(bus *input.Bus) {
	d.keys.Attach(bus)
	d.look.Attach(bus)
}

func (d *DesktopStrategy) Detach() {
	d.keys.Detach()
	d.look.Detach()
}

func (d *DesktopStrategy) SampleIntent() input.Intent { return d.keys.Intent() }
func (d *DesktopStrategy) SampleYaw() float32         { return d.look.Yaw() }
func (d *DesktopStrategy) SetYaw(yaw float32)         { d.look.SetYaw(yaw) }
func (d *DesktopStrategy) ResetIntent()               { d.keys.Reset() }

// TouchStrategy reads the on-screen stick and turns with horizontal drags.
type TouchStrategy struct {
	stick *input.Aggregator
	look  *look.Touch
}

// NewTouch returns the joystick + drag variant writing to cam.
func NewTouch(cam look.Camera, sensitivity float32) *TouchStrategy {
	return &TouchStrategy{
		stick: input.NewAggregator(input.SourceJoystick, nil),
		look:  look.NewTouch(cam, sensitivity),
	}
}

func (t *TouchStrategy) Platform() Platform { return Touch }

func (t *TouchStrategy) Attach(bus *input.Bus) {
	t.stick.Attach(bus)
	t.look.Attach(bus)
}

func (t *TouchStrategy) Detach() {
	t.stick.Detach()
	t.look.Detach()
}

func (t *TouchStrategy) SampleIntent() input.Intent { return t.stick.Intent() }
func (t *TouchStrategy) SampleYaw() float32         { return t.look.Yaw() }
func (t *TouchStrategy) SetYaw(yaw float32)         { t.look.SetYaw(yaw) }
func (t *TouchStrategy) ResetIntent()               { t.stick.Reset() }
