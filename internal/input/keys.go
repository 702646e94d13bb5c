package input

// Key is a physical key code, named after the key's position rather than the character it
// types ("KeyW" is the W position on any layout).
type Key string

const (
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Direction is one of the four movement flags of an Intent.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// String returns the config name of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "forward":
		return Forward, true
	case "backward":
		return Backward, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}

// KeyMap maps each bound key to exactly one direction.
type KeyMap map[Key]Direction

// DefaultKeyMap binds WASD and the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyW:          Forward,
		KeyArrowUp:    Forward,
		KeyS:          Backward,
		KeyArrowDown:  Backward,
		KeyA:          Left,
		KeyArrowLeft:  Left,
		KeyD:          Right,
		KeyArrowRight: Right,
	}
}

// KeyMapFromBindings builds a map from config-style bindings (direction name -> key codes).
// Unknown direction names are skipped. A key listed under two directions keeps the last one
// in Forward, Backward, Left, Right order.
func KeyMapFromBindings(bindings map[string][]string) KeyMap {
	m := make(KeyMap)
	for _, d := range []Direction{Forward, Backward, Left, Right} {
		for _, k := range bindings[d.String()] {
			if k == "" {
				continue
			}
			m[Key(k)] = d
		}
	}
	return m
}

// Keys returns every bound key.
func (m KeyMap) Keys() []Key {
	out := make([]Key, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
