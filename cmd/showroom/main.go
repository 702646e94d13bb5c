package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"showroom/internal/commands"
	"showroom/internal/debug"
	"showroom/internal/engineconfig"
	"showroom/internal/graphics"
	"showroom/internal/layout"
	"showroom/internal/logger"
	"showroom/internal/platform"
	"showroom/internal/player"
	"showroom/internal/scene"
	"showroom/internal/session"
	"showroom/internal/terminal"
)

func main() {
	configPath := flag.String("config", engineconfig.ConfigPath, "path to the YAML config")
	platformName := flag.String("platform", "", "look and input variant: desktop or touch (overrides config)")
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, cfgErr := engineconfig.Load(*configPath)
	if cfgErr != nil && explicit {
		fmt.Fprintln(os.Stderr, cfgErr)
		os.Exit(1)
	}
	if *platformName != "" {
		cfg.Platform = *platformName
	}

	lines := logger.New(cfg.Logging.File)
	level, levelErr := logger.ParseLevel(cfg.Logging.Level)
	log := lines.Slog(level)
	slog.SetDefault(log)
	if cfgErr != nil {
		log.Warn("using default config", "err", cfgErr)
	}
	if levelErr != nil {
		log.Warn("using info log level", "err", levelErr)
	}

	plat, err := player.ParsePlatform(cfg.Platform)
	if err != nil {
		log.Warn("falling back to desktop", "err", err)
		plat = player.Desktop
	}

	geo := layout.Build(cfg, log)
	sess := session.New(session.Options{
		Platform:           plat,
		Speed:              cfg.Player.Speed,
		EyeHeight:          cfg.Player.EyeHeight,
		BodyHalfExtents:    cfg.Player.BodyHalfExtents(),
		SpawnPoint:         cfg.Player.SpawnPoint(),
		SpawnYaw:           engineconfig.Radians(cfg.Player.SpawnYaw),
		TouchSensitivity:   cfg.Look.TouchSensitivity,
		PointerSensitivity: cfg.Look.PointerSensitivity,
		Keys:               cfg.KeyMap(),
		Gravity:            cfg.Physics.GravityVec(),
		MaxSubstep:         cfg.Physics.MaxSubstep,
		Colliders:          geo.Colliders(),
		Logger:             log,
	})
	sess.Mount()
	defer sess.Unmount()

	dbg := debug.New()
	dbg.SetShowFPS(cfg.Debug.ShowFPS)
	dbg.SetShowHUD(cfg.Debug.ShowHUD)

	reg := commands.NewRegistry()
	commands.RegisterShowroom(reg, sess, dbg, lines.Log)

	desktop := plat == player.Desktop
	poller := platform.NewPoller(plat, cfg.KeyMap())
	term := terminal.New(lines, reg)
	term.CaptureCursor = desktop
	term.OnOpen = func() {
		sess.SuspendInput()
		poller.Reset()
	}
	term.OnClose = sess.ResumeInput

	scn := scene.New(geo)
	scn.SetGridVisible(cfg.Debug.GridVisible)

	update := func(elapsed, delta float32) {
		term.Update()
		if !term.IsOpen() {
			poller.Poll(sess.Bus())
		}
		sess.Frame(elapsed, delta)
		scn.Sync(sess.Camera())
	}
	draw := func() {
		scn.Draw()
		poller.DrawStick()
		term.Draw()
		pose := sess.Pose()
		dbg.Draw(debug.Info{
			Platform: string(sess.Platform()),
			Position: pose.Position,
			Yaw:      pose.Yaw,
			Velocity: sess.Command().Velocity,
			Ready:    sess.Ready(),
		})
	}
	graphics.Run(graphics.Window{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Fullscreen:    cfg.Window.Fullscreen,
		TargetFPS:     cfg.Window.TargetFPS,
		CaptureCursor: desktop,
	}, update, draw)
}
