package geom

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"interior", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"on left edge", 10, 45, true},
		{"left of rect", 9.9, 45, false},
		{"below rect", 50, 70.1, false},
		{"far away", -100, -100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	if c := r.Center(); c.X != 50 || c.Y != 50 {
		t.Errorf("Center() = %v, want (50, 50)", c)
	}
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{
			name: "perpendicular to middle",
			p:    Point{50, 10},
			a:    Point{0, 0},
			b:    Point{100, 0},
			want: 10,
		},
		{
			name: "beyond segment end clamps to endpoint",
			p:    Point{110, 0},
			a:    Point{0, 0},
			b:    Point{100, 0},
			want: 10,
		},
		{
			name: "before segment start clamps to start",
			p:    Point{-3, 4},
			a:    Point{0, 0},
			b:    Point{100, 0},
			want: 5,
		},
		{
			name: "degenerate segment",
			p:    Point{3, 4},
			a:    Point{0, 0},
			b:    Point{0, 0},
			want: 5,
		},
		{
			name: "point on segment",
			p:    Point{50, 0},
			a:    Point{0, 0},
			b:    Point{100, 0},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentDistance(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SegmentDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEdgePoint(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		target Point
		want   Point
	}{
		{
			name:   "target to the right exits right edge",
			r:      Rect{X: 0, Y: 0, Width: 100, Height: 100},
			target: Point{350, 50},
			want:   Point{100, 50},
		},
		{
			name:   "target to the left exits left edge",
			r:      Rect{X: 300, Y: 0, Width: 100, Height: 100},
			target: Point{50, 50},
			want:   Point{300, 50},
		},
		{
			name:   "target below exits bottom edge",
			r:      Rect{X: 0, Y: 0, Width: 100, Height: 100},
			target: Point{50, 400},
			want:   Point{50, 100},
		},
		{
			name:   "diagonal target exits corner",
			r:      Rect{X: 0, Y: 0, Width: 100, Height: 100},
			target: Point{200, 200},
			want:   Point{100, 100},
		},
		{
			name:   "coincident centers fall back to center",
			r:      Rect{X: 0, Y: 0, Width: 100, Height: 100},
			target: Point{50, 50},
			want:   Point{50, 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EdgePoint(tt.r, tt.target)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("EdgePoint() = %v, want %v", got, tt.want)
			}
		})
	}
}
