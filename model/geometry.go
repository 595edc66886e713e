package model

import "math"

// Point represents a 2D point in document pixel coordinates.
type Point struct {
	X, Y float64
}

// Bounds represents an axis-aligned rectangle in document pixel
// coordinates. The Y axis grows downward, so Top <= Bottom for any
// well-formed rectangle. Width and height are always derived, never
// stored.
type Bounds struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// NewBounds creates a rectangle from its four edges.
func NewBounds(top, left, right, bottom float64) Bounds {
	return Bounds{Top: top, Left: left, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the rectangle.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Area returns the area of the rectangle.
func (b Bounds) Area() float64 {
	return b.Width() * b.Height()
}

// Center returns the center point of the rectangle.
func (b Bounds) Center() Point {
	return Point{
		X: b.Left + b.Width()/2,
		Y: b.Top + b.Height()/2,
	}
}

// IsValid reports whether the rectangle has positive width and height.
// Zero-size rectangles are excluded from clustering.
func (b Bounds) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// IsFinite reports whether all four edges are finite numbers.
func (b Bounds) IsFinite() bool {
	for _, v := range [4]float64{b.Top, b.Left, b.Right, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Union returns the smallest rectangle containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Top:    math.Min(b.Top, other.Top),
		Left:   math.Min(b.Left, other.Left),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Contains reports whether other lies entirely within b.
func (b Bounds) Contains(other Bounds) bool {
	return other.Left >= b.Left && other.Right <= b.Right &&
		other.Top >= b.Top && other.Bottom <= b.Bottom
}

// Intersects reports whether the two rectangles overlap on both axes.
func (b Bounds) Intersects(other Bounds) bool {
	return b.HorizontalGap(other) == 0 && b.VerticalGap(other) == 0
}

// HorizontalGap returns the horizontal distance between the nearest
// vertical edges of the two rectangles, or 0 if they overlap on the
// horizontal axis.
func (b Bounds) HorizontalGap(other Bounds) float64 {
	switch {
	case b.Right < other.Left:
		return other.Left - b.Right
	case other.Right < b.Left:
		return b.Left - other.Right
	default:
		return 0
	}
}

// VerticalGap returns the vertical distance between the nearest
// horizontal edges of the two rectangles, or 0 if they overlap on the
// vertical axis.
func (b Bounds) VerticalGap(other Bounds) float64 {
	switch {
	case b.Bottom < other.Top:
		return other.Top - b.Bottom
	case other.Bottom < b.Top:
		return b.Top - other.Bottom
	default:
		return 0
	}
}

// Gap returns the minimum Euclidean distance between the two
// rectangles. Rectangles that overlap on an axis contribute 0 on that
// axis, so touching or overlapping rectangles have a gap of 0.
func (b Bounds) Gap(other Bounds) float64 {
	h := b.HorizontalGap(other)
	v := b.VerticalGap(other)
	if h == 0 {
		return v
	}
	if v == 0 {
		return h
	}
	return math.Sqrt(h*h + v*v)
}

// VerticalOverlap returns the length of the shared vertical interval
// of the two rectangles, or 0 if they do not overlap vertically.
func (b Bounds) VerticalOverlap(other Bounds) float64 {
	overlap := math.Min(b.Bottom, other.Bottom) - math.Max(b.Top, other.Top)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// HorizontalOverlap returns the length of the shared horizontal
// interval of the two rectangles, or 0 if they do not overlap
// horizontally.
func (b Bounds) HorizontalOverlap(other Bounds) float64 {
	overlap := math.Min(b.Right, other.Right) - math.Max(b.Left, other.Left)
	if overlap < 0 {
		return 0
	}
	return overlap
}

// UnionBounds returns the union of all given rectangles. An empty
// input yields the zero Bounds.
func UnionBounds(all []Bounds) Bounds {
	if len(all) == 0 {
		return Bounds{}
	}
	result := all[0]
	for _, b := range all[1:] {
		result = result.Union(b)
	}
	return result
}
