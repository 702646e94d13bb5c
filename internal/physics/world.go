package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultMaxSubstep is the longest single integration step; longer frames are split.
	DefaultMaxSubstep = float32(1.0 / 60.0)
	// maxSubsteps bounds the work done for one very long frame (e.g. after a window drag).
	maxSubsteps = 8
	// sleepSpeed is the speed under which a body counts as idle.
	sleepSpeed = float32(0.01)
	// DefaultSleepDelay is how long a body must stay idle before it sleeps.
	DefaultSleepDelay = float32(0.5)
)

// AABB is an axis-aligned box.
type AABB struct {
	Min, Max mgl32.Vec3
}

// Collider is a static box rotated about +Y. Local +X and +Z map to world by the standard
// right-handed Y rotation, so RotationY = -a lays local +Z along the tangent of a circle at angle a.
type Collider struct {
	Position    mgl32.Vec3
	HalfExtents mgl32.Vec3
	RotationY   float32
}

// World holds dynamic/static bodies and static colliders and runs a simple 3D step:
// gravity, integration, then collision resolution.
type World struct {
	Gravity    mgl32.Vec3
	MaxSubstep float32
	SleepDelay float32
	Bodies     []*Body
	Colliders  []Collider
}

// NewWorld returns a world with gravity (0, -9.81, 0); +Y is up.
func NewWorld() *World {
	return &World{
		Gravity:    mgl32.Vec3{0, -9.81, 0},
		MaxSubstep: DefaultMaxSubstep,
		SleepDelay: DefaultSleepDelay,
	}
}

// SetGravity sets the gravity vector.
func (w *World) SetGravity(g mgl32.Vec3) {
	w.Gravity = g
}

// AddBody appends a body to the world.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// AddColliders registers static colliders.
func (w *World) AddColliders(cs ...Collider) {
	w.Colliders = append(w.Colliders, cs...)
}

// Step advances the simulation by dt seconds, split into substeps no longer than MaxSubstep.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	maxStep := w.MaxSubstep
	if maxStep <= 0 {
		maxStep = DefaultMaxSubstep
	}
	n := int(math32.Ceil(dt / maxStep))
	if n > maxSubsteps {
		n = maxSubsteps
	}
	if n < 1 {
		n = 1
	}
	h := dt / float32(n)
	for i := 0; i < n; i++ {
		w.substep(h)
	}
}

func (w *World) substep(dt float32) {
	// Apply gravity and integrate awake dynamic bodies
	for _, b := range w.Bodies {
		if b.static || b.sleeping {
			continue
		}
		b.linearVelocity = b.maskLocked(b.linearVelocity.Add(w.Gravity.Mul(dt)))
		b.translation = b.translation.Add(b.linearVelocity.Mul(dt))
	}

	for _, b := range w.Bodies {
		if b.static || b.sleeping {
			continue
		}
		for i := range w.Colliders {
			resolveCollider(b, &w.Colliders[i])
		}
	}

	w.resolvePairs()

	for _, b := range w.Bodies {
		if b.static || b.sleeping {
			continue
		}
		if b.linearVelocity.LenSqr() < sleepSpeed*sleepSpeed {
			b.idle += dt
			if w.SleepDelay > 0 && b.idle >= w.SleepDelay {
				b.sleeping = true
				b.linearVelocity = mgl32.Vec3{}
			}
		} else {
			b.idle = 0
		}
	}
}

// resolveCollider pushes b out of c along the axis of least penetration in the collider's
// frame and removes the velocity component heading into the surface so bodies slide along walls.
func resolveCollider(b *Body, c *Collider) bool {
	sin, cos := math32.Sin(c.RotationY), math32.Cos(c.RotationY)
	d := b.translation.Sub(c.Position)
	local := mgl32.Vec3{d[0]*cos - d[2]*sin, d[1], d[0]*sin + d[2]*cos}

	// Body box projected onto the collider's axes.
	he := b.halfExtents
	ext := mgl32.Vec3{
		math32.Abs(cos)*he[0] + math32.Abs(sin)*he[2],
		he[1],
		math32.Abs(sin)*he[0] + math32.Abs(cos)*he[2],
	}

	depth := float32(math32.MaxFloat32)
	axis := -1
	for i := 0; i < 3; i++ {
		overlap := ext[i] + c.HalfExtents[i] - math32.Abs(local[i])
		if overlap <= 0 {
			return false
		}
		if overlap < depth {
			depth, axis = overlap, i
		}
	}

	var push mgl32.Vec3
	if local[axis] < 0 {
		push[axis] = -depth
	} else {
		push[axis] = depth
	}
	world := mgl32.Vec3{push[0]*cos + push[2]*sin, push[1], -push[0]*sin + push[2]*cos}
	b.translation = b.translation.Add(world)

	normal := world.Normalize()
	if vn := b.linearVelocity.Dot(normal); vn < 0 {
		b.linearVelocity = b.linearVelocity.Sub(normal.Mul(vn))
	}
	return true
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b AABB) (depth float32, axis int) {
	depth = math32.MaxFloat32
	axis = -1
	for i := 0; i < 3; i++ {
		overlap := min(a.Max[i], b.Max[i]) - max(a.Min[i], b.Min[i])
		if overlap <= 0 {
			return 0, -1
		}
		if overlap < depth {
			depth, axis = overlap, i
		}
	}
	return depth, axis
}

// resolvePairs separates overlapping bodies, splitting the correction by mass.
// Static bodies don't move.
func (w *World) resolvePairs() {
	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.static && bj.static {
				continue
			}
			boxI, boxJ := bi.aabb(), bj.aabb()
			depth, axis := penetrationAxis(boxI, boxJ)
			if axis < 0 {
				continue
			}
			// Push along the axis away from the other body's center.
			dir := float32(1)
			if bi.translation[axis] > bj.translation[axis] {
				dir = -1
			}
			var moveI, moveJ float32
			switch {
			case bi.static:
				moveJ = depth
			case bj.static:
				moveI = -depth
			default:
				total := bi.mass + bj.mass
				moveI = -depth * (bj.mass / total)
				moveJ = depth * (bi.mass / total)
			}
			bi.translation[axis] += moveI * dir
			bj.translation[axis] += moveJ * dir
			if !bi.static {
				bi.linearVelocity[axis] = 0
				bi.WakeUp()
			}
			if !bj.static {
				bj.linearVelocity[axis] = 0
				bj.WakeUp()
			}
		}
	}
}
