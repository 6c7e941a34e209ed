package spatial

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Box is an axis-aligned rectangle in world units.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoxFromRect builds a box from a top-left corner and a size.
func BoxFromRect(x, y, w, h float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// BoxAround builds a box from a centre and half extents.
func BoxAround(cx, cy, halfW, halfH float64) Box {
	return Box{MinX: cx - halfW, MinY: cy - halfH, MaxX: cx + halfW, MaxY: cy + halfH}
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

func (b Box) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Overlaps reports a strictly positive area of intersection. Boxes that
// only share an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinY < o.MaxY && o.MinY < b.MaxY
}

// Intersects is the inclusive test: shared edges count.
func (b Box) Intersects(o Box) bool {
	return b.MinX <= o.MaxX && o.MinX <= b.MaxX && b.MinY <= o.MaxY && o.MinY <= b.MaxY
}

// Contains reports whether the point lies inside b, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Manifold describes how two boxes overlap.
type Manifold struct {
	Normal dmath.Vec2 // unit axis from the first box towards the second
	Depth  float64
}

func manifold(a, b Box) (Manifold, bool) {
	if !a.Overlaps(b) {
		return Manifold{}, false
	}
	ox := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	oy := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	ax, ay := a.Center()
	bx, by := b.Center()

	if ox <= oy {
		n := 1.0
		if bx < ax {
			n = -1
		}
		return Manifold{Normal: dmath.Vec2{X: n}, Depth: ox}, true
	}
	n := 1.0
	if by < ay {
		n = -1
	}
	return Manifold{Normal: dmath.Vec2{Y: n}, Depth: oy}, true
}
