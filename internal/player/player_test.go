package player

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/camera"
	"showroom/internal/input"
	"showroom/internal/physics"
)

type call struct {
	name string
	wake bool
}

type fakeBody struct {
	pos, vel, ang mgl32.Vec3
	enabled       [3]bool
	calls         []call
}

func (b *fakeBody) Translation() mgl32.Vec3 { return b.pos }
func (b *fakeBody) SetTranslation(p mgl32.Vec3, wake bool) {
	b.pos = p
	b.calls = append(b.calls, call{"SetTranslation", wake})
}
func (b *fakeBody) LinearVelocity() mgl32.Vec3 { return b.vel }
func (b *fakeBody) SetLinearVelocity(v mgl32.Vec3, wake bool) {
	b.vel = v
	b.calls = append(b.calls, call{"SetLinearVelocity", wake})
}
func (b *fakeBody) SetAngularVelocity(v mgl32.Vec3, wake bool) {
	b.ang = v
	b.calls = append(b.calls, call{"SetAngularVelocity", wake})
}
func (b *fakeBody) SetEnabledTranslations(x, y, z bool, wake bool) {
	b.enabled = [3]bool{x, y, z}
	b.calls = append(b.calls, call{"SetEnabledTranslations", wake})
}

type fakeStrategy struct {
	intent input.Intent
	yaw    float32
}

func (s *fakeStrategy) Platform() Platform         { return Desktop }
func (s *fakeStrategy) Attach(*input.Bus)          {}
func (s *fakeStrategy) Detach()                    {}
func (s *fakeStrategy) SampleIntent() input.Intent { return s.intent }
func (s *fakeStrategy) SampleYaw() float32         { return s.yaw }
func (s *fakeStrategy) SetYaw(yaw float32)         { s.yaw = yaw }
func (s *fakeStrategy) ResetIntent()               { s.intent = input.Intent{} }

func horizontalSpeed(v mgl32.Vec3) float32 {
	return mgl32.Vec2{v.X(), v.Z()}.Len()
}

func TestStepSpeedIsIndependentOfDirectionCount(t *testing.T) {
	tests := []struct {
		name   string
		intent input.Intent
	}{
		{"forward", input.Intent{Forward: true}},
		{"backward", input.Intent{Backward: true}},
		{"forward right", input.Intent{Forward: true, Right: true}},
		{"backward left", input.Intent{Backward: true, Left: true}},
		{"three keys", input.Intent{Forward: true, Left: true, Right: true}},
		{"full stick diagonal", input.Intent{Joystick: mgl32.Vec2{1, 1}}},
		{"partial stick", input.Intent{Joystick: mgl32.Vec2{0.2, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := &fakeBody{}
			c := NewController(&fakeStrategy{intent: tt.intent}, 6, DefaultEyeHeight)
			c.Bind(body, camera.New(mgl32.Vec3{}))
			cmd, ok := c.Step(0, 1.0/60)
			if !ok {
				t.Fatal("Step skipped with body and camera bound")
			}
			if got := horizontalSpeed(cmd.Velocity); math32.Abs(got-6) > 1e-4 {
				t.Errorf("horizontal speed = %v, want 6", got)
			}
		})
	}
}

func TestStepSpeedScenario(t *testing.T) {
	bus := input.NewBus()
	cam := camera.New(mgl32.Vec3{})
	s := NewDesktop(cam, nil, 0)
	s.Attach(bus)
	bus.Publish(input.KeyEvent{Key: input.KeyW, Down: true})
	bus.Publish(input.KeyEvent{Key: input.KeyD, Down: true})

	body := &fakeBody{vel: mgl32.Vec3{0, -2, 0}}
	c := NewController(s, 10, DefaultEyeHeight)
	c.Bind(body, cam)
	cmd, _ := c.Step(1, 0.1)

	h := 10 / math32.Sqrt(2)
	want := mgl32.Vec3{h, -2, -h}
	if !near(cmd.Velocity, want, 1e-4) {
		t.Errorf("velocity = %v, want %v", cmd.Velocity, want)
	}
	if got := horizontalSpeed(cmd.Velocity); math32.Abs(got-10) > 1e-4 {
		t.Errorf("horizontal speed = %v, want 10", got)
	}
	if body.vel != cmd.Velocity {
		t.Errorf("body velocity = %v, want the command %v", body.vel, cmd.Velocity)
	}

	// Forward alone: the command is a velocity, so delta does not scale it.
	bus.Publish(input.KeyEvent{Key: input.KeyD, Down: false})
	body.vel = mgl32.Vec3{0, -2, 0}
	cmd, _ = c.Step(1.1, 0.1)
	if !near(cmd.Velocity, mgl32.Vec3{0, -2, -10}, 1e-5) {
		t.Errorf("forward velocity = %v, want (0, -2, -10)", cmd.Velocity)
	}
}

func TestStepPreservesVerticalVelocity(t *testing.T) {
	for _, vy := range []float32{0, -3.5, 2} {
		body := &fakeBody{vel: mgl32.Vec3{4, vy, 4}}
		c := NewController(&fakeStrategy{intent: input.Intent{Left: true}}, 5, 0)
		c.Bind(body, camera.New(mgl32.Vec3{}))
		cmd, _ := c.Step(0, 1.0/60)
		if cmd.Velocity.Y() != vy {
			t.Errorf("vy = %v, want %v", cmd.Velocity.Y(), vy)
		}
	}
}

func TestStepZeroInputStopsHorizontal(t *testing.T) {
	body := &fakeBody{vel: mgl32.Vec3{3, -1, 7}}
	c := NewController(&fakeStrategy{}, 5, 0)
	c.Bind(body, camera.New(mgl32.Vec3{}))
	for i := 0; i < 3; i++ {
		cmd, _ := c.Step(float32(i), 1.0/60)
		if cmd.Velocity != (mgl32.Vec3{0, -1, 0}) {
			t.Fatalf("step %d: velocity = %v, want (0, -1, 0)", i, cmd.Velocity)
		}
	}
}

func TestStepOpposingKeysCancel(t *testing.T) {
	body := &fakeBody{}
	c := NewController(&fakeStrategy{intent: input.Intent{Forward: true, Backward: true}}, 5, 0)
	c.Bind(body, camera.New(mgl32.Vec3{}))
	cmd, _ := c.Step(0, 1.0/60)
	if cmd.Velocity != (mgl32.Vec3{}) {
		t.Errorf("velocity = %v, want zero", cmd.Velocity)
	}
}

func TestStepWithoutHandles(t *testing.T) {
	s := &fakeStrategy{intent: input.Intent{Forward: true}}
	tests := []struct {
		name string
		body Body
		cam  Camera
	}{
		{"no body", nil, camera.New(mgl32.Vec3{})},
		{"no camera", &fakeBody{}, nil},
		{"neither", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(s, 5, 0)
			c.Bind(tt.body, tt.cam)
			if _, ok := c.Step(0, 1.0/60); ok {
				t.Error("Step ran without handles")
			}
			if fb, ok := tt.body.(*fakeBody); ok && len(fb.calls) != 0 {
				t.Errorf("body touched: %v", fb.calls)
			}
		})
	}
}

func TestStepFollowsCameraHeading(t *testing.T) {
	cam := camera.New(mgl32.Vec3{})
	c := NewController(&fakeStrategy{intent: input.Intent{Forward: true}}, 2, 0)
	body := &fakeBody{}
	c.Bind(body, cam)

	tests := []struct {
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{0, 0, mgl32.Vec3{0, 0, -2}},
		{math32.Pi, 0, mgl32.Vec3{0, 0, 2}},
		{math32.Pi / 2, 0, mgl32.Vec3{-2, 0, 0}},
		{math32.Pi / 2, 1.2, mgl32.Vec3{-2, 0, 0}},
	}
	for _, tt := range tests {
		cam.SetRotation(tt.yaw, tt.pitch, 0, mgl32.YXZ)
		cmd, _ := c.Step(0, 1.0/60)
		if !near(cmd.Velocity, tt.want, 1e-4) {
			t.Errorf("yaw %v pitch %v: velocity = %v, want %v", tt.yaw, tt.pitch, cmd.Velocity, tt.want)
		}
	}

	// Straight up has no heading; the previous one is kept.
	cam.SetRotation(math32.Pi/2, math32.Pi/2, 0, mgl32.YXZ)
	cmd, _ := c.Step(0, 1.0/60)
	if !near(cmd.Velocity, mgl32.Vec3{-2, 0, 0}, 1e-3) {
		t.Errorf("looking up: velocity = %v, want (-2, 0, 0)", cmd.Velocity)
	}
}

func TestTouchStrategyJoystick(t *testing.T) {
	bus := input.NewBus()
	cam := camera.New(mgl32.Vec3{})
	s := NewTouch(cam, 0)
	s.SetYaw(math32.Pi)
	s.Attach(bus)

	// Keys are not the touch source.
	bus.Publish(input.KeyEvent{Key: input.KeyA, Down: true})
	bus.Publish(input.JoystickEvent{X: 0, Y: 0.5})

	body := &fakeBody{}
	c := NewController(s, 4, 0)
	c.Bind(body, cam)
	cmd, _ := c.Step(0, 1.0/60)
	if !near(cmd.Velocity, mgl32.Vec3{0, 0, 4}, 1e-4) {
		t.Errorf("velocity = %v, want (0, 0, 4)", cmd.Velocity)
	}

	bus.Publish(input.JoystickEvent{Released: true})
	cmd, _ = c.Step(0, 1.0/60)
	if cmd.Velocity != (mgl32.Vec3{}) {
		t.Errorf("velocity after release = %v, want zero", cmd.Velocity)
	}
}

func TestStepPlacesCameraAtEyeHeight(t *testing.T) {
	body := &fakeBody{pos: mgl32.Vec3{1, 2, 3}}
	cam := camera.New(mgl32.Vec3{})
	c := NewController(&fakeStrategy{}, 5, 0.7)
	c.Bind(body, cam)
	c.Step(0, 1.0/60)
	if !near(cam.Position(), mgl32.Vec3{1, 2.7, 3}, 1e-6) {
		t.Errorf("camera at %v, want (1, 2.7, 3)", cam.Position())
	}
}

func TestScheduler(t *testing.T) {
	s := NewScheduler()
	var ran []string
	s.Schedule(func() { ran = append(ran, "a") })
	b := s.Schedule(func() { ran = append(ran, "b") })
	s.Schedule(func() { ran = append(ran, "c") })

	if n := s.RunDue(); n != 0 {
		t.Fatalf("RunDue on the scheduling frame ran %d tasks", n)
	}
	s.Cancel(b)
	s.Cancel(b)
	s.Advance()

	if n := s.RunDue(); n != 2 {
		t.Fatalf("RunDue ran %d tasks, want 2", n)
	}
	if len(ran) != 2 || ran[0] != "a" || ran[1] != "c" {
		t.Errorf("ran %v, want [a c]", ran)
	}
	if n := s.RunDue(); n != 0 || s.Pending() != 0 {
		t.Errorf("tasks ran twice: n=%d pending=%d", n, s.Pending())
	}
}

func TestSchedulerNestedScheduleWaits(t *testing.T) {
	s := NewScheduler()
	inner := false
	s.Schedule(func() {
		s.Schedule(func() { inner = true })
	})
	s.Advance()
	s.RunDue()
	if inner {
		t.Fatal("task scheduled during RunDue ran on the same frame")
	}
	s.Advance()
	s.RunDue()
	if !inner {
		t.Error("nested task never ran")
	}
}

func TestSpawnIsQuietUntilReleased(t *testing.T) {
	body := &fakeBody{pos: mgl32.Vec3{9, 9, 9}, vel: mgl32.Vec3{1, 1, 1}, ang: mgl32.Vec3{1, 0, 0}}
	strat := &fakeStrategy{}
	sched := NewScheduler()
	sp := NewSpawner(body, strat, sched, mgl32.Vec3{0, 1.6, -50}, math32.Pi, nil)
	ready := 0
	sp.OnReady = func() { ready++ }

	if !sp.Spawn() {
		t.Fatal("Spawn returned false")
	}
	for _, c := range body.calls {
		if c.wake {
			t.Errorf("%s woke the body during spawn", c.name)
		}
	}
	if body.pos != (mgl32.Vec3{0, 1.6, -50}) || body.vel != (mgl32.Vec3{}) || body.ang != (mgl32.Vec3{}) {
		t.Errorf("body after spawn: pos %v vel %v ang %v", body.pos, body.vel, body.ang)
	}
	if body.enabled != [3]bool{true, false, true} {
		t.Errorf("enabled = %v, want Y locked", body.enabled)
	}
	if strat.yaw != math32.Pi {
		t.Errorf("yaw = %v, want pi", strat.yaw)
	}

	sched.RunDue()
	if ready != 0 || !sp.Pending() {
		t.Fatal("released on the spawn frame")
	}
	sched.Advance()
	sched.RunDue()
	if ready != 1 || sp.Pending() {
		t.Fatalf("ready = %d pending = %v after one frame", ready, sp.Pending())
	}
	last := body.calls[len(body.calls)-1]
	if last.name != "SetEnabledTranslations" || !last.wake || body.enabled != [3]bool{true, true, true} {
		t.Errorf("release call = %+v enabled = %v", last, body.enabled)
	}
}

func TestRespawnReplacesPendingRelease(t *testing.T) {
	body := &fakeBody{}
	sched := NewScheduler()
	sp := NewSpawner(body, nil, sched, mgl32.Vec3{}, 0, nil)
	ready := 0
	sp.OnReady = func() { ready++ }

	sp.Spawn()
	sp.Spawn()
	if sched.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", sched.Pending())
	}
	sched.Advance()
	sched.RunDue()
	if ready != 1 {
		t.Errorf("ready fired %d times, want 1", ready)
	}

	sp.Spawn()
	sp.Cancel()
	sched.Advance()
	sched.RunDue()
	if ready != 1 {
		t.Errorf("cancelled release fired")
	}
	if body.enabled != [3]bool{true, false, true} {
		t.Errorf("enabled = %v, want Y still locked", body.enabled)
	}
}

func TestSpawnWithoutBody(t *testing.T) {
	sched := NewScheduler()
	sp := NewSpawner(nil, nil, sched, mgl32.Vec3{}, 0, nil)
	if sp.Spawn() {
		t.Error("Spawn reported success without a body")
	}
	if sched.Pending() != 0 {
		t.Error("Spawn scheduled a release without a body")
	}
}

func TestSpawnSequenceInWorld(t *testing.T) {
	world := physics.NewWorld()
	world.AddColliders(physics.Collider{Position: mgl32.Vec3{0, -0.5, 0}, HalfExtents: mgl32.Vec3{100, 0.5, 100}})
	body := physics.NewBody(mgl32.Vec3{0, 20, 0}, mgl32.Vec3{0.3, 0.8, 0.3}, 1, false)
	world.AddBody(body)

	cam := camera.New(mgl32.Vec3{})
	strat := NewDesktop(cam, nil, 0)
	ctrl := NewController(strat, 6, DefaultEyeHeight)
	ctrl.Bind(body, cam)
	sched := NewScheduler()
	sp := NewSpawner(body, strat, sched, mgl32.Vec3{0, 1.6, -50}, math32.Pi, nil)
	ready := false
	sp.OnReady = func() { ready = true }
	sp.Spawn()

	frame := func() {
		sched.RunDue()
		ctrl.Step(0, 1.0/60)
		world.Step(1.0 / 60)
		sched.Advance()
	}

	frame()
	if ready {
		t.Fatal("ready before the deferred frame")
	}
	if p := body.Translation(); p != (mgl32.Vec3{0, 1.6, -50}) {
		t.Fatalf("translation after first frame = %v, want spawn point", p)
	}

	frame()
	if !ready {
		t.Fatal("not ready after the second frame")
	}
	if _, y, _ := body.EnabledTranslations(); !y {
		t.Fatal("Y still locked after release")
	}
	if y := body.Translation().Y(); y >= 1.6 {
		t.Errorf("y = %v after release, want falling", y)
	}

	for i := 0; i < 180; i++ {
		frame()
	}
	if y := body.Translation().Y(); math32.Abs(y-0.8) > 0.02 {
		t.Errorf("resting y = %v, want ~0.8 on the floor", y)
	}
	if !near(cam.WorldForward(), mgl32.Vec3{0, 0, 1}, 1e-4) {
		t.Errorf("camera forward = %v, want +Z after spawn yaw pi", cam.WorldForward())
	}
}

// near compares by absolute distance; mgl32's ApproxEqualThreshold is relative and rejects
// float noise against an exact zero.
func near(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}
