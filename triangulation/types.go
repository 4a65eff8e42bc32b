package triangulation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Points are stored in 32-bit precision, the way they arrive from the input
// layer. All geometric predicates widen them to float64 first, which keeps
// differences and cross products of stored coordinates (nearly) exact.
type Point mgl32.Vec2

// Vectors are differences of points and circle centers. They are always float64.
type Vector = mgl64.Vec2

func Pt(x, y float32) Point {
	return Point{x, y}
}

func (p Point) X() float32 { return p[0] }
func (p Point) Y() float32 { return p[1] }

func (p Point) Vec64() Vector {
	return Vector{float64(p[0]), float64(p[1])}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p[0], p[1])
}

// A directed edge between two point indices. Edges only exist while a contour
// is being built; they are never stored in the triangle set.
type Edge struct {
	From, To int
}

func (e Edge) Reverse() Edge {
	return Edge{e.To, e.From}
}

// Lexicographic (From, To) ordering
func (e Edge) Less(other Edge) bool {
	if e.From == other.From {
		return e.To < other.To
	}
	return e.From < other.From
}

type EdgeSet map[Edge]struct{}

func (s EdgeSet) Add(e Edge) {
	s[e] = struct{}{}
}

func (s EdgeSet) Contains(e Edge) bool {
	_, ok := s[e]
	return ok
}

// The identity of a triangle. This is the index triple rotated so that the
// smallest index comes first, which preserves winding. Two triangles over the
// same vertices with the same winding always have the same key, no matter
// which vertex they were created from.
type TriangleKey [3]int

type Circle struct {
	Center   Vector
	RadiusSq float64
}

// Strict containment. Points exactly on the circle are not inside.
func (c Circle) Contains(p Point) bool {
	return DistanceSq(p.Vec64(), c.Center) < c.RadiusSq
}

type Triangle struct {
	// Indices into the point store, in the winding they were created with. With
	// y pointing down (screen space), this is clockwise.
	Indices [3]int
	Circle  Circle
}

func (t *Triangle) Key() TriangleKey {
	return Canonical(t.Indices)
}

func (t *Triangle) HasVertex(i int) bool {
	return t.Indices[0] == i || t.Indices[1] == i || t.Indices[2] == i
}

// The directed edge starting at vertex i
func (t *Triangle) Edge(i int) Edge {
	return Edge{t.Indices[i], t.Indices[CircularIndex(i+1, 3)]}
}

// Read-only export of a triangle for renderers. It carries positions, never
// point indices.
type TriangleView struct {
	Vertices [3]Point `yaml:"vertices"`
	Center   Vector   `yaml:"center"`
	Radius   float64  `yaml:"radius"`
}
