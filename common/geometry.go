package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned rectangle in world pixels. Y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// BottomCenter returns the midpoint of the bottom edge.
func (r Rect) BottomCenter() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Bottom()}
}

// Intersects reports whether the two rectangles overlap. Touching edges do
// not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Offset returns r translated by v.
func (r Rect) Offset(v cp.Vector) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// IntersectionDepth computes how far a overlaps b on each axis. The result
// is the translation that moves a out of b along that axis; its sign
// follows the offset of a's center relative to b's. Rectangles that do not
// overlap yield the zero vector.
func IntersectionDepth(a, b Rect) cp.Vector {
	halfWidthA := a.Width / 2
	halfHeightA := a.Height / 2
	halfWidthB := b.Width / 2
	halfHeightB := b.Height / 2

	centerA := cp.Vector{X: a.X + halfWidthA, Y: a.Y + halfHeightA}
	centerB := cp.Vector{X: b.X + halfWidthB, Y: b.Y + halfHeightB}

	distanceX := centerA.X - centerB.X
	distanceY := centerA.Y - centerB.Y
	minDistanceX := halfWidthA + halfWidthB
	minDistanceY := halfHeightA + halfHeightB

	if math.Abs(distanceX) >= minDistanceX || math.Abs(distanceY) >= minDistanceY {
		return cp.Vector{}
	}

	var depth cp.Vector
	if distanceX > 0 {
		depth.X = minDistanceX - distanceX
	} else {
		depth.X = -minDistanceX - distanceX
	}
	if distanceY > 0 {
		depth.Y = minDistanceY - distanceY
	} else {
		depth.Y = -minDistanceY - distanceY
	}
	return depth
}

// Circle is a bounding circle used for pickups.
type Circle struct {
	Center cp.Vector
	Radius float64
}

// Intersects reports whether the point of r closest to the circle's center
// lies within the radius.
func (c Circle) Intersects(r Rect) bool {
	closest := cp.Vector{
		X: Clamp(c.Center.X, r.Left(), r.Right()),
		Y: Clamp(c.Center.Y, r.Top(), r.Bottom()),
	}
	return closest.Sub(c.Center).LengthSq() <= c.Radius*c.Radius
}
