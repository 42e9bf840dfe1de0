package circuit

import "math"

// Point is a scene coordinate.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rotate rotates p around the origin by deg degrees (clockwise in screen space).
func (p Point) Rotate(deg float64) Point {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// BoundingBox is an axis-aligned rectangle in scene coordinates.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox returns an empty box ready to be expanded.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether nothing has been added to the box.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the box to include p.
func (bb *BoundingBox) Expand(p Point) {
	bb.Min.X = math.Min(bb.Min.X, p.X)
	bb.Min.Y = math.Min(bb.Min.Y, p.Y)
	bb.Max.X = math.Max(bb.Max.X, p.X)
	bb.Max.Y = math.Max(bb.Max.Y, p.Y)
}

// Contains reports whether p lies inside the box, edges included.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Width returns the horizontal extent of the box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the vertical extent of the box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}
