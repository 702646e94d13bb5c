package radial

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const twoPi = 2 * math32.Pi

// Shape is the collider shape of a generated piece. Only boxes are produced.
type Shape int

const (
	ShapeBox Shape = iota
)

// Gap is an angular opening [Center - Width/2, Center + Width/2] (mod 2π), in radians.
type Gap struct {
	Center float32
	Width  float32
}

// Ring describes a circular structure standing on the XZ plane: a band of height Height
// starting at BaseY, centered on (Center.X, Center.Y) in world X/Z, with one gap.
type Ring struct {
	Radius    float32
	Height    float32
	Thickness float32
	BaseY     float32
	Center    mgl32.Vec2
	Gap       Gap
	Segments  int
}

// Segment is one straight box approximating a slice of the ring's arc. The box's local +Z
// runs along the arc tangent and local +X points away from the ring center.
type Segment struct {
	Shape       Shape
	CenterAngle float32
	SliceWidth  float32
	ArcLength   float32
	Position    mgl32.Vec3
	RotationY   float32
	HalfExtents mgl32.Vec3
}

// Valid reports whether the ring yields any geometry.
func (r Ring) Valid() bool {
	return r.Segments > 0 && r.Radius > 0 && r.Height > 0 && r.Thickness > 0 && r.Gap.Width < twoPi
}

// CoverableArc returns the angle covered by segments: 2π minus the gap.
func (r Ring) CoverableArc() float32 {
	return twoPi - gapWidth(r.Gap)
}

// Generate slices the ring outside its gap into r.Segments equal boxes. The slices start at
// one gap edge and end exactly at the other, so the opening is exactly Gap.Width wide and no
// segment straddles an edge. Invalid rings yield nil.
func Generate(r Ring) []Segment {
	if !r.Valid() {
		return nil
	}
	w := gapWidth(r.Gap)
	slice := (twoPi - w) / float32(r.Segments)
	start := r.Gap.Center + w/2
	arc := r.Radius * slice
	midY := r.BaseY + r.Height/2

	out := make([]Segment, 0, r.Segments)
	for i := 0; i < r.Segments; i++ {
		a := normalize(start + (float32(i)+0.5)*slice)
		out = append(out, Segment{
			Shape:       ShapeBox,
			CenterAngle: a,
			SliceWidth:  slice,
			ArcLength:   arc,
			Position: mgl32.Vec3{
				r.Center.X() + r.Radius*math32.Cos(a),
				midY,
				r.Center.Y() + r.Radius*math32.Sin(a),
			},
			RotationY:   -a,
			HalfExtents: mgl32.Vec3{r.Thickness / 2, r.Height / 2, arc / 2},
		})
	}
	return out
}

// GapPosts returns two square posts of the given half width centered on the gap edges, the
// doorway pillars of a ring. Rings without a gap or without geometry yield nil.
func GapPosts(r Ring, halfWidth float32) []Segment {
	if !r.Valid() || gapWidth(r.Gap) == 0 || halfWidth <= 0 {
		return nil
	}
	w := gapWidth(r.Gap)
	out := make([]Segment, 0, 2)
	for _, edge := range []float32{r.Gap.Center - w/2, r.Gap.Center + w/2} {
		a := normalize(edge)
		out = append(out, Segment{
			Shape:       ShapeBox,
			CenterAngle: a,
			Position: mgl32.Vec3{
				r.Center.X() + r.Radius*math32.Cos(a),
				r.BaseY + r.Height/2,
				r.Center.Y() + r.Radius*math32.Sin(a),
			},
			RotationY:   -a,
			HalfExtents: mgl32.Vec3{halfWidth, r.Height / 2, halfWidth},
		})
	}
	return out
}

// InGap reports whether angle a lies inside the open interval of the gap.
func InGap(g Gap, a float32) bool {
	w := gapWidth(g)
	if w == 0 {
		return false
	}
	d := normalize(a - (g.Center - w/2))
	return d > 0 && d < w
}

func gapWidth(g Gap) float32 {
	if g.Width < 0 {
		return 0
	}
	return g.Width
}

func normalize(a float32) float32 {
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
