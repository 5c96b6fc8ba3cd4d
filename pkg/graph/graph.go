package graph

import (
	"github.com/dd0wney/roomgraph/pkg/geometry"
)

// EdgeKind distinguishes real walls from synthesized door-gap bridges.
type EdgeKind int

const (
	// EdgeWall is an edge backed by an input wall segment.
	EdgeWall EdgeKind = iota
	// EdgeDoorBridge is a synthesized edge connecting two dangling
	// endpoints across a small gap (an open doorway).
	EdgeDoorBridge
)

// Edge connects two node indices. From and To are interchangeable; the
// graph is undirected.
type Edge struct {
	From int
	To   int
	Kind EdgeKind
	Wall geometry.Wall
}

// Other returns the endpoint of e that is not node. For self-loops it
// returns node itself.
func (e Edge) Other(node int) int {
	if e.From == node {
		return e.To
	}
	return e.From
}

// Graph is an undirected multigraph over floorplan points. Nodes are small
// integer indices into a point arena, keyed by rounded coordinates.
// Parallel edges and self-loops are allowed; edges correspond 1:1 to input
// walls plus any synthesized bridges.
type Graph struct {
	points []geometry.Point
	index  map[geometry.Key]int
	edges  []Edge
	// incident[n] lists indices into edges for every edge touching node n.
	incident [][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[geometry.Key]int),
	}
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.points) }

// EdgeCount returns the number of edges, including synthesized bridges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Point returns the coordinates of the given node index.
func (g *Graph) Point(node int) geometry.Point { return g.points[node] }

// PointsOf maps a node index sequence to its coordinate sequence.
func (g *Graph) PointsOf(nodes []int) []geometry.Point {
	points := make([]geometry.Point, len(nodes))
	for i, n := range nodes {
		points[i] = g.points[n]
	}
	return points
}

// Edge returns the edge with the given index.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Incident returns the indices of all edges touching the given node.
func (g *Graph) Incident(node int) []int { return g.incident[node] }

// Degree returns the number of edge endpoints at the given node. A
// self-loop contributes two.
func (g *Graph) Degree(node int) int {
	degree := 0
	for _, ei := range g.incident[node] {
		e := g.edges[ei]
		if e.From == node && e.To == node {
			degree += 2
		} else {
			degree++
		}
	}
	return degree
}

// HasEdgeBetween reports whether any edge directly connects a and b.
func (g *Graph) HasEdgeBetween(a, b int) bool {
	for _, ei := range g.incident[a] {
		if g.edges[ei].Other(a) == b {
			return true
		}
	}
	return false
}

// NodeAt returns the node index for a point, creating the node if its
// rounded coordinates have not been seen before.
func (g *Graph) NodeAt(p geometry.Point) int {
	key := geometry.KeyOf(p)
	if node, ok := g.index[key]; ok {
		return node
	}
	node := len(g.points)
	g.points = append(g.points, p)
	g.incident = append(g.incident, nil)
	g.index[key] = node
	return node
}

// AddEdge inserts an edge between two node indices.
func (g *Graph) AddEdge(from, to int, kind EdgeKind, wall geometry.Wall) {
	ei := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Kind: kind, Wall: wall})
	g.incident[from] = append(g.incident[from], ei)
	if to != from {
		g.incident[to] = append(g.incident[to], ei)
	}
}
