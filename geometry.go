package main

import "math"

// DistanceToSegment returns the distance from p to the closest point of the
// finite segment a-b. A degenerate segment measures the distance to a.
func DistanceToSegment(p, a, b Point) float64 {
	cx, cy := b.X-a.X, b.Y-a.Y
	lenSq := cx*cx + cy*cy
	param := -1.0
	if lenSq != 0 {
		param = ((p.X-a.X)*cx + (p.Y-a.Y)*cy) / lenSq
	}

	var nearest Point
	switch {
	case param < 0:
		nearest = a
	case param > 1:
		nearest = b
	default:
		nearest = Point{X: a.X + param*cx, Y: a.Y + param*cy}
	}
	return p.Distance(nearest)
}

// insertionIndex returns where a point at p should be inserted into pts:
// directly after the first endpoint of the closest segment. Ties keep the
// earlier segment. Without any segment the point goes first.
func insertionIndex(p Point, pts []Point) int {
	best := math.Inf(1)
	index := 0
	for i := 0; i < len(pts)-1; i++ {
		if d := DistanceToSegment(p, pts[i], pts[i+1]); d < best {
			best = d
			index = i + 1
		}
	}
	return index
}

// clipSegment clips a-b to the rectangle [minX,maxX]x[minY,maxY]
// (Liang-Barsky). ok is false when no part of the segment is inside.
func clipSegment(a, b Pixel, minX, minY, maxX, maxY float64) (Pixel, Pixel, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = Pixel{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		cb = Pixel{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return ca, cb, true
}
