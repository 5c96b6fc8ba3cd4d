package rooms

import (
	"github.com/dd0wney/roomgraph/pkg/algorithms"
	"github.com/dd0wney/roomgraph/pkg/geometry"
	"github.com/dd0wney/roomgraph/pkg/graph"
)

// Room is a detected room boundary.
type Room struct {
	ID          int                  `json:"id"`
	BoundingBox geometry.BoundingBox `json:"bounding_box"`
	Area        float64              `json:"area"`
	NameHint    string               `json:"name_hint"`
	Points      []geometry.Point     `json:"points"`
}

// Synthesize turns surviving cycles into rooms: ordered polygon points,
// unsigned shoelace area, axis-aligned bounding box, and a heuristic
// display name. Ids follow the enumeration order of the cycle list.
func Synthesize(g *graph.Graph, cycles []algorithms.Cycle) []Room {
	out := make([]Room, 0, len(cycles))
	for id, cycle := range cycles {
		points := cyclePoints(g, cycle)
		area := geometry.PolygonArea(points)
		box := geometry.BoundsOf(points)

		out = append(out, Room{
			ID:          id,
			BoundingBox: box,
			Area:        area,
			NameHint:    nameHint(area, box),
			Points:      points,
		})
	}
	return out
}

// nameHint buckets a room into a display name by area and aspect ratio.
// These thresholds are a display heuristic, not a contract.
func nameHint(area float64, box geometry.BoundingBox) string {
	aspect := 0.0
	if box.Height() != 0 {
		aspect = box.Width() / box.Height()
	}

	switch {
	case area < 500:
		return "Small Room"
	case area < 2000:
		if aspect > 1.5 || aspect < 0.67 {
			return "Corridor"
		}
		return "Bedroom"
	case area < 5000:
		return "Living Room"
	default:
		return "Large Room"
	}
}
