// Package layout builds the showroom's static geometry: the glass wall with its doorway, the
// doorway pillars, the plaza guardrail and the floor.
package layout

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/engineconfig"
	"showroom/internal/physics"
	"showroom/internal/radial"
)

const (
	floorThickness = 0.5
	floorMargin    = 10
)

// Layout is the generated static geometry.
type Layout struct {
	Wall      []radial.Segment
	Posts     []radial.Segment
	Guardrail []radial.Segment
	Floor     physics.Collider
}

// Build generates the layout from cfg. A ring that yields no segments is logged and left empty.
func Build(cfg engineconfig.Config, log *slog.Logger) Layout {
	if log == nil {
		log = slog.Default()
	}
	wall := cfg.Showroom.Radial()
	rail := cfg.Guardrail.Radial()

	l := Layout{
		Wall:      radial.Generate(wall),
		Posts:     radial.GapPosts(wall, cfg.Showroom.PostSize),
		Guardrail: radial.Generate(rail),
	}
	if len(l.Wall) == 0 {
		log.Debug("showroom ring produced no segments", "ring", wall)
	}
	if len(l.Guardrail) == 0 {
		log.Debug("guardrail ring produced no segments", "ring", rail)
	}

	extent := max(wall.Radius, rail.Radius, 0) + floorMargin
	l.Floor = physics.Collider{
		Position:    mgl32.Vec3{0, -floorThickness, 0},
		HalfExtents: mgl32.Vec3{extent, floorThickness, extent},
	}
	log.Info("layout built", "wall", len(l.Wall), "posts", len(l.Posts), "guardrail", len(l.Guardrail))
	return l
}

// Colliders returns every static collider, floor first.
func (l Layout) Colliders() []physics.Collider {
	out := make([]physics.Collider, 0, 1+len(l.Wall)+len(l.Posts)+len(l.Guardrail))
	out = append(out, l.Floor)
	for _, group := range [][]radial.Segment{l.Wall, l.Posts, l.Guardrail} {
		for _, s := range group {
			out = append(out, Collider(s))
		}
	}
	return out
}

// Collider converts a generated segment to a physics collider.
func Collider(s radial.Segment) physics.Collider {
	return physics.Collider{Position: s.Position, HalfExtents: s.HalfExtents, RotationY: s.RotationY}
}
