package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window configures the window opened by Run.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	TargetFPS  int32
	// CaptureCursor hides and locks the mouse for pointer look.
	CaptureCursor bool
}

// Run opens the window and drives the main loop. Each frame it calls update with the seconds
// since start and since the previous frame, then clears the screen and calls draw.
// ESC is reserved for the terminal; close via the window button.
func Run(w Window, update func(elapsed, delta float32), draw func()) {
	width, height := w.Width, w.Height
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(w.TargetFPS)
	}
	if w.CaptureCursor {
		rl.DisableCursor()
	}

	for !rl.WindowShouldClose() {
		update(float32(rl.GetTime()), rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
