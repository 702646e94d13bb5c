package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is a 3D rigid body with translation, velocity and a box shape given by half extents.
// Static bodies never move and are not affected by gravity. Translation along an axis can be
// locked, which also pins the velocity along that axis to zero.
type Body struct {
	translation     mgl32.Vec3
	linearVelocity  mgl32.Vec3
	angularVelocity mgl32.Vec3
	halfExtents     mgl32.Vec3
	mass            float32
	static          bool
	enabled         [3]bool
	sleeping        bool
	idle            float32
}

// NewBody returns an awake body at position with the given half extents. Velocity is zero.
// mass is used for body-vs-body response; use 1 for default.
func NewBody(position, halfExtents mgl32.Vec3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	for i := range halfExtents {
		if halfExtents[i] <= 0 {
			halfExtents[i] = 0.5
		}
	}
	return &Body{
		translation: position,
		halfExtents: halfExtents,
		mass:        mass,
		static:      static,
		enabled:     [3]bool{true, true, true},
	}
}

// Translation returns the body's center.
func (b *Body) Translation() mgl32.Vec3 {
	return b.translation
}

// SetTranslation teleports the body. With wake false a sleeping body stays asleep.
func (b *Body) SetTranslation(p mgl32.Vec3, wake bool) {
	b.translation = p
	b.touch(wake)
}

// LinearVelocity returns the current velocity in units per second.
func (b *Body) LinearVelocity() mgl32.Vec3 {
	return b.linearVelocity
}

// SetLinearVelocity replaces the velocity. Components along locked axes are dropped.
func (b *Body) SetLinearVelocity(v mgl32.Vec3, wake bool) {
	b.linearVelocity = b.maskLocked(v)
	b.touch(wake)
}

// AngularVelocity returns the stored angular velocity. The world does not rotate bodies;
// the value is kept so callers can zero it the way a full engine would need.
func (b *Body) AngularVelocity() mgl32.Vec3 {
	return b.angularVelocity
}

// SetAngularVelocity replaces the angular velocity.
func (b *Body) SetAngularVelocity(v mgl32.Vec3, wake bool) {
	b.angularVelocity = v
	b.touch(wake)
}

// SetEnabledTranslations locks or frees translation per axis.
func (b *Body) SetEnabledTranslations(x, y, z bool, wake bool) {
	b.enabled = [3]bool{x, y, z}
	b.linearVelocity = b.maskLocked(b.linearVelocity)
	b.touch(wake)
}

// EnabledTranslations reports which axes may move.
func (b *Body) EnabledTranslations() (x, y, z bool) {
	return b.enabled[0], b.enabled[1], b.enabled[2]
}

// HalfExtents returns the box half size.
func (b *Body) HalfExtents() mgl32.Vec3 {
	return b.halfExtents
}

// Static reports whether the body is fixed.
func (b *Body) Static() bool {
	return b.static
}

// Sleeping reports whether the world is skipping this body.
func (b *Body) Sleeping() bool {
	return b.sleeping
}

// WakeUp resumes simulation of a sleeping body.
func (b *Body) WakeUp() {
	b.sleeping = false
	b.idle = 0
}

func (b *Body) touch(wake bool) {
	if wake {
		b.WakeUp()
	}
}

func (b *Body) maskLocked(v mgl32.Vec3) mgl32.Vec3 {
	for i := range v {
		if !b.enabled[i] {
			v[i] = 0
		}
	}
	return v
}

// aabb returns the body's axis-aligned bounds.
func (b *Body) aabb() AABB {
	return AABB{Min: b.translation.Sub(b.halfExtents), Max: b.translation.Add(b.halfExtents)}
}
