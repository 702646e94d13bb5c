package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"showroom/internal/player"
)

// Walker is the part of a session the console can drive.
type Walker interface {
	Respawn()
	Speed() float32
	SetSpeed(speed float32)
	Platform() player.Platform
}

// Overlay toggles the debug overlays.
type Overlay interface {
	SetShowFPS(show bool)
	SetShowHUD(show bool)
}

// RegisterShowroom adds the walker console commands to r. Output lines go to out.
func RegisterShowroom(r *Registry, w Walker, o Overlay, out func(string)) {
	r.Register("respawn", "respawn", nil, func() error {
		w.Respawn()
		out("respawned")
		return nil
	})

	speedFS := NewFlagSet("speed")
	r.Register("speed", "speed [units/s]", speedFS, func() error {
		if speedFS.NArg() == 0 {
			out(fmt.Sprintf("speed %.2f", w.Speed()))
			return nil
		}
		v, err := strconv.ParseFloat(speedFS.Arg(0), 32)
		if err != nil {
			return fmt.Errorf("invalid speed %q", speedFS.Arg(0))
		}
		if v <= 0 {
			return errors.New("speed must be positive")
		}
		w.SetSpeed(float32(v))
		out(fmt.Sprintf("speed %.2f", w.Speed()))
		return nil
	})

	registerToggle(r, "fps", o.SetShowFPS, out)
	registerToggle(r, "hud", o.SetShowHUD, out)

	r.Register("platform", "platform", nil, func() error {
		out("platform " + string(w.Platform()))
		return nil
	})

	r.Register("help", "help", nil, func() error {
		usages := make([]string, 0, len(r.cmds))
		for _, name := range r.Names() {
			usages = append(usages, r.cmds[name].Usage)
		}
		out("commands: " + strings.Join(usages, ", "))
		return nil
	})
}

func registerToggle(r *Registry, name string, set func(bool), out func(string)) {
	fs := NewFlagSet(name)
	show := fs.Bool("show", false, "show the overlay")
	hide := fs.Bool("hide", false, "hide the overlay")
	r.Register(name, name+" --show|--hide", fs, func() error {
		switch {
		case *show && *hide:
			return errors.New("--show and --hide are exclusive")
		case *show:
			set(true)
			out(name + " shown")
		case *hide:
			set(false)
			out(name + " hidden")
		default:
			return errors.New("want --show or --hide")
		}
		return nil
	})
}
