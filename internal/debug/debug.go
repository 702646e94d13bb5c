package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Info is the walker state shown by the HUD.
type Info struct {
	Platform string
	Position mgl32.Vec3
	Yaw      float32
	Velocity mgl32.Vec3
	Ready    bool
}

// Debug holds runtime overlays: the FPS/memory counter at the top right and the walker HUD at
// the top left. All overlays are off by default.
type Debug struct {
	ShowFPS bool
	ShowHUD bool

	frameCount  uint32
	lastFpsText string
	lastMemText string
	hudText     []string
	memStats    runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether FPS and heap allocation are drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowHUD sets whether the walker HUD is drawn.
func (d *Debug) SetShowHUD(show bool) {
	d.ShowHUD = show
}

// Draw renders the enabled overlays. Call after the scene and terminal in the draw loop.
func (d *Debug) Draw(info Info) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}

	if d.ShowFPS {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		screenW := int32(rl.GetScreenWidth())
		y := int32(padding)
		for _, text := range []string{d.lastFpsText, d.lastMemText} {
			w := rl.MeasureText(text, fontSize)
			rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
			y += lineHeight
		}
	}

	if d.ShowHUD {
		// The HUD follows motion, so it is rebuilt every frame.
		d.hudText = hudLines(d.hudText[:0], info)
		y := int32(padding)
		for _, text := range d.hudText {
			rl.DrawText(text, padding, y, fontSize, rl.Yellow)
			y += lineHeight
		}
	}
}

func hudLines(dst []string, info Info) []string {
	p, v := info.Position, info.Velocity
	state := "spawning"
	if info.Ready {
		state = "ready"
	}
	return append(dst,
		fmt.Sprintf("%s (%s)", info.Platform, state),
		fmt.Sprintf("pos %.2f %.2f %.2f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("yaw %.1f°", mgl32.RadToDeg(info.Yaw)),
		fmt.Sprintf("vel %.2f %.2f %.2f", v.X(), v.Y(), v.Z()),
	)
}
