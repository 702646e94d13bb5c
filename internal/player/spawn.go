package player

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Spawner places the player body at its spawn point without letting it fall through the floor
// before colliders are in the world. Vertical translation stays locked for one frame.
type Spawner struct {
	Point mgl32.Vec3
	Yaw   float32
	// OnReady runs once the body is free to fall, on the frame after Spawn.
	OnReady func()

	body      Body
	strategy  Strategy
	scheduler *Scheduler
	log       *slog.Logger

	pending TaskID
	armed   bool
}

// NewSpawner returns a spawner for body driven by s, deferring through sched.
func NewSpawner(body Body, s Strategy, sched *Scheduler, point mgl32.Vec3, yaw float32, log *slog.Logger) *Spawner {
	if log == nil {
		log = slog.Default()
	}
	return &Spawner{
		Point:     point,
		Yaw:       yaw,
		body:      body,
		strategy:  s,
		scheduler: sched,
		log:       log,
	}
}

// Spawn teleports the body, zeroes its motion, locks Y and applies the spawn yaw, then schedules
// the unlock for the next frame. Spawning again before that frame replaces the pending unlock.
// It reports false when there is no body to place.
func (sp *Spawner) Spawn() bool {
	if sp.body == nil {
		return false
	}
	sp.Cancel()

	sp.body.SetTranslation(sp.Point, false)
	sp.body.SetLinearVelocity(mgl32.Vec3{}, false)
	sp.body.SetAngularVelocity(mgl32.Vec3{}, false)
	sp.body.SetEnabledTranslations(true, false, true, false)
	if sp.strategy != nil {
		sp.strategy.SetYaw(sp.Yaw)
	}

	sp.pending = sp.scheduler.Schedule(sp.release)
	sp.armed = true
	sp.log.Debug("spawned", "point", sp.Point, "yaw", sp.Yaw)
	return true
}

// Pending reports whether an unlock is still waiting.
func (sp *Spawner) Pending() bool {
	return sp.armed
}

// Cancel drops a pending unlock. The body keeps its Y lock.
func (sp *Spawner) Cancel() {
	if !sp.armed {
		return
	}
	sp.scheduler.Cancel(sp.pending)
	sp.armed = false
}

func (sp *Spawner) release() {
	sp.armed = false
	sp.body.SetEnabledTranslations(true, true, true, true)
	sp.log.Debug("spawn released", "translation", sp.body.Translation())
	if sp.OnReady != nil {
		sp.OnReady()
	}
}
