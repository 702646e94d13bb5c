package session

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/camera"
	"showroom/internal/input"
	"showroom/internal/physics"
	"showroom/internal/player"
)

// Options configures a walker session. Zero values fall back to the package defaults of the
// component that consumes them.
type Options struct {
	Platform           player.Platform
	Speed              float32
	EyeHeight          float32
	BodyHalfExtents    mgl32.Vec3
	SpawnPoint         mgl32.Vec3
	SpawnYaw           float32
	TouchSensitivity   float32
	PointerSensitivity float32
	Keys               input.KeyMap
	Gravity            mgl32.Vec3
	MaxSubstep         float32
	Colliders          []physics.Collider
	Logger             *slog.Logger
}

// Pose is where the player stands and which way it faces.
type Pose struct {
	Position mgl32.Vec3
	Yaw      float32
}

// Session owns one walker: input bus, camera, physics world, player body and the controllers
// that drive them. All methods run on the frame goroutine.
type Session struct {
	log *slog.Logger

	bus        *input.Bus
	camera     *camera.Camera
	world      *physics.World
	body       *physics.Body
	strategy   player.Strategy
	controller *player.Controller
	scheduler  *player.Scheduler
	spawner    *player.Spawner
	colliders  []physics.Collider

	mounted   bool
	suspended bool
	ready     bool
	// OnReady runs each time a spawn finishes and the body is free to move.
	OnReady func()
}

// New builds a session. Nothing is attached or simulated until Mount.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	cam := camera.New(opts.SpawnPoint.Add(mgl32.Vec3{0, opts.EyeHeight, 0}))

	var strategy player.Strategy
	switch opts.Platform {
	case player.Touch:
		strategy = player.NewTouch(cam, opts.TouchSensitivity)
	default:
		strategy = player.NewDesktop(cam, opts.Keys, opts.PointerSensitivity)
	}

	world := physics.NewWorld()
	if opts.Gravity != (mgl32.Vec3{}) {
		world.SetGravity(opts.Gravity)
	}
	if opts.MaxSubstep > 0 {
		world.MaxSubstep = opts.MaxSubstep
	}
	body := physics.NewBody(opts.SpawnPoint, opts.BodyHalfExtents, 1, false)

	ctrl := player.NewController(strategy, opts.Speed, opts.EyeHeight)
	ctrl.Bind(body, cam)

	sched := player.NewScheduler()
	s := &Session{
		log:        log,
		bus:        input.NewBus(),
		camera:     cam,
		world:      world,
		body:       body,
		strategy:   strategy,
		controller: ctrl,
		scheduler:  sched,
		colliders:  opts.Colliders,
	}
	s.spawner = player.NewSpawner(body, strategy, sched, opts.SpawnPoint, opts.SpawnYaw, log)
	s.spawner.OnReady = s.onReady
	return s
}

// Mount registers colliders and the player body with the world, attaches input listeners and
// spawns the player. A second Mount without Unmount does nothing.
func (s *Session) Mount() {
	if s.mounted {
		return
	}
	if len(s.world.Bodies) == 0 {
		s.world.AddColliders(s.colliders...)
		s.world.AddBody(s.body)
	}
	s.mounted = true
	s.suspended = false
	s.strategy.Attach(s.bus)
	s.spawner.Spawn()
	s.log.Info("session mounted", "platform", s.strategy.Platform(), "colliders", len(s.world.Colliders))
}

// Unmount detaches every listener and cancels the pending spawn release. Safe to call repeatedly.
func (s *Session) Unmount() {
	if !s.mounted {
		return
	}
	s.strategy.Detach()
	s.strategy.ResetIntent()
	s.spawner.Cancel()
	s.scheduler.CancelAll()
	s.mounted = false
	s.ready = false
	s.log.Info("session unmounted")
}

// Mounted reports whether the session is live.
func (s *Session) Mounted() bool {
	return s.mounted
}

// Frame advances one frame: due deferred tasks, locomotion, physics, then the frame counter.
func (s *Session) Frame(elapsed, delta float32) {
	if !s.mounted {
		return
	}
	s.scheduler.RunDue()
	s.controller.Step(elapsed, delta)
	s.world.Step(delta)
	s.scheduler.Advance()
}

// Respawn puts the player back at the spawn point.
func (s *Session) Respawn() {
	if !s.mounted {
		return
	}
	s.ready = false
	s.spawner.Spawn()
}

// SuspendInput stops listening for movement and look input and drops held input, e.g. while a
// text field has focus.
func (s *Session) SuspendInput() {
	if !s.mounted || s.suspended {
		return
	}
	s.strategy.Detach()
	s.strategy.ResetIntent()
	s.suspended = true
}

// ResumeInput re-attaches the listeners removed by SuspendInput.
func (s *Session) ResumeInput() {
	if !s.mounted || !s.suspended {
		return
	}
	s.strategy.Attach(s.bus)
	s.suspended = false
}

// Suspended reports whether input is suspended.
func (s *Session) Suspended() bool {
	return s.suspended
}

// Ready reports whether the last spawn has released the body.
func (s *Session) Ready() bool {
	return s.ready
}

// Bus returns the event bus platform adapters publish to.
func (s *Session) Bus() *input.Bus {
	return s.bus
}

// Camera returns the render camera.
func (s *Session) Camera() *camera.Camera {
	return s.camera
}

// Body returns the player body.
func (s *Session) Body() *physics.Body {
	return s.body
}

// Controller returns the locomotion controller.
func (s *Session) Controller() *player.Controller {
	return s.controller
}

// Speed returns the walking speed.
func (s *Session) Speed() float32 {
	return s.controller.Speed
}

// SetSpeed changes the walking speed; non-positive values are ignored.
func (s *Session) SetSpeed(speed float32) {
	if speed > 0 {
		s.controller.Speed = speed
	}
}

// Platform returns the active look-and-input variant.
func (s *Session) Platform() player.Platform {
	return s.strategy.Platform()
}

// Command returns the last commanded velocity.
func (s *Session) Command() player.Command {
	return s.controller.LastCommand()
}

// Pose returns the camera position and the look yaw.
func (s *Session) Pose() Pose {
	return Pose{Position: s.camera.Position(), Yaw: s.strategy.SampleYaw()}
}

func (s *Session) onReady() {
	s.ready = true
	s.log.Debug("player ready", "translation", s.body.Translation())
	if s.OnReady != nil {
		s.OnReady()
	}
}
