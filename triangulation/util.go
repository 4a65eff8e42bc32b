package triangulation

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
)

const Tolerance = 1e-6

// Tolerance based equality. Only used for checks on computed values (areas,
// radii); the insertion predicates themselves are exact sign tests.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Rotate an index triple so the smallest index is first
func Canonical(indices [3]int) TriangleKey {
	first := 0
	for i := 1; i < 3; i++ {
		if indices[i] < indices[first] {
			first = i
		}
	}
	return TriangleKey{
		indices[first],
		indices[CircularIndex(first+1, 3)],
		indices[CircularIndex(first+2, 3)],
	}
}

// Vector from b to a
func Sub(a, b Point) Vector {
	return a.Vec64().Sub(b.Vec64())
}

func Cross(a, b Vector) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

func DistanceSq(a, b Vector) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Twice the signed area is the cross product of two edges. Positive when the
// triangle winds counterclockwise with y up (clockwise on screen).
func SignedArea(a, b, c Point) float64 {
	return Cross(Sub(b, a), Sub(c, a)) / 2
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s %v <center: (%g, %g), r²: %g>",
		t.DbgName(), t.Indices, t.Circle.Center[0], t.Circle.Center[1], t.Circle.RadiusSq)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t.Key())
	// Triangles still attached to a corner of the bounding square are cyan
	for _, i := range t.Indices {
		if i < 4 {
			return aurora.Cyan(name).String()
		}
	}
	return aurora.Green(name).String()
}
