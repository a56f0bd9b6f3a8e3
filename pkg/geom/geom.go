// Package geom provides the 2D primitives used by the block model:
// points, axis-aligned rectangles, point-to-segment distance, and
// ray/rectangle edge intersection. All functions are pure and operate
// in user units (typically pixels in SVG output).
package geom

import "math"

// Point is a position in 2D space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle,
// boundary included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// SegmentDistance returns the shortest distance from p to the line segment
// a–b. The projection parameter is clamped to [0, 1], so the result is the
// distance to the segment itself, not to the infinite line through it.
// A degenerate segment (a == b) yields the plain point distance.
func SegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return Dist(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))

	closest := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return Dist(p, closest)
}

// EdgePoint returns the point on the rectangle's boundary where the ray
// from the rectangle's center toward target exits, choosing the candidate
// intersection closest to target. The ray parameter is restricted to
// [0, 1] (center to target), so a target inside the rectangle still
// resolves to a boundary point between the two centers when one exists.
//
// If the direction is degenerate (target coincides with the center) or no
// edge intersection qualifies, the rectangle's own center is returned.
func EdgePoint(r Rect, target Point) Point {
	c := r.Center()
	dx := target.X - c.X
	dy := target.Y - c.Y

	type hit struct{ p Point }
	var hits []hit

	// Vertical edges: solve for the ray parameter at x = r.X and x = r.X+Width.
	if dx != 0 {
		for _, x := range []float64{r.X, r.X + r.Width} {
			t := (x - c.X) / dx
			y := c.Y + t*dy
			if t >= 0 && t <= 1 && y >= r.Y && y <= r.Y+r.Height {
				hits = append(hits, hit{Point{X: x, Y: y}})
			}
		}
	}

	// Horizontal edges: solve for the ray parameter at y = r.Y and y = r.Y+Height.
	if dy != 0 {
		for _, y := range []float64{r.Y, r.Y + r.Height} {
			t := (y - c.Y) / dy
			x := c.X + t*dx
			if t >= 0 && t <= 1 && x >= r.X && x <= r.X+r.Width {
				hits = append(hits, hit{Point{X: x, Y: y}})
			}
		}
	}

	if len(hits) == 0 {
		return c
	}

	best := hits[0].p
	bestDist := Dist(best, target)
	for _, h := range hits[1:] {
		if d := Dist(h.p, target); d < bestDist {
			best = h.p
			bestDist = d
		}
	}
	return best
}
