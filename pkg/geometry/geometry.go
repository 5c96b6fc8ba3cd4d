package geometry

import "math"

// coordPrecision is the coordinate rounding scale used across the whole
// pipeline. Points whose coordinates agree after rounding at 1e-6 are the
// same node. Any layer that normalizes coordinates must use the same scale
// or points meant to be identical silently become distinct nodes.
const coordPrecision = 1e6

// Point is a 2D coordinate in floorplan space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Key identifies a point by its rounded coordinates. Two points with equal
// keys are treated as the same graph node regardless of their exact float
// representation.
type Key struct {
	X int64
	Y int64
}

// KeyOf returns the rounded-coordinate key for p.
func KeyOf(p Point) Key {
	return Key{
		X: int64(math.Round(p.X * coordPrecision)),
		Y: int64(math.Round(p.Y * coordPrecision)),
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Wall is a single wall segment between two points.
type Wall struct {
	Start         Point  `json:"start"`
	End           Point  `json:"end"`
	IsLoadBearing bool   `json:"is_load_bearing,omitempty"`
	Source        string `json:"source,omitempty"`
}

// BoundingBox is an axis-aligned box as [minX, minY, maxX, maxY].
type BoundingBox [4]float64

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b[2] - b[0] }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b[3] - b[1] }

// BoundsOf computes the axis-aligned bounding box of the given points.
func BoundsOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{
		math.Inf(1), math.Inf(1),
		math.Inf(-1), math.Inf(-1),
	}
	for _, p := range points {
		box[0] = math.Min(box[0], p.X)
		box[1] = math.Min(box[1], p.Y)
		box[2] = math.Max(box[2], p.X)
		box[3] = math.Max(box[3], p.Y)
	}
	return box
}

// PolygonArea returns the unsigned area of the polygon described by the
// ordered vertex sequence, using the shoelace formula. The sequence is
// treated as closed (last vertex connects back to the first). Fewer than
// three vertices yields zero.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}

	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	return math.Abs(area) / 2
}
