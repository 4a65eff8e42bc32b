package triangulation

// This contains no actual tests. It is just helpers for checking that a
// triangulation is valid.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// The area of the bounding square
const squareArea = 4.0

// Check everything that must hold after any sequence of successful insertions:
// 1. Every triangle winds counterclockwise (y up) with nonzero area.
// 2. No two triangles share a key.
// 3. No point lies strictly inside a circumcircle, except the triangle's own vertices.
// 4. The areas of all triangles sum to the area of the bounding square.
func AssertValidTriangulation(t *testing.T, tri *Triangulation) {
	t.Helper()
	AssertUniqueTriangles(t, tri)
	AssertDelaunay(t, tri)
	AssertAreaConserved(t, tri)
}

func AssertUniqueTriangles(t *testing.T, tri *Triangulation) {
	t.Helper()
	seen := make(map[TriangleKey]struct{})
	for _, triangle := range tri.triangles.All() {
		key := triangle.Key()
		_, ok := seen[key]
		require.False(t, ok, "duplicate triangle %v", key)
		seen[key] = struct{}{}
	}
	require.Len(t, seen, tri.Len())
}

func AssertDelaunay(t *testing.T, tri *Triangulation) {
	t.Helper()
	for _, triangle := range tri.triangles.All() {
		triangle := triangle
		for i, p := range tri.points {
			if triangle.HasVertex(i) {
				continue
			}
			distSq := DistanceSq(p.Vec64(), triangle.Circle.Center)
			// Relative slack for the rounding in the cached circle
			slack := 1e-9 * math.Max(1, triangle.Circle.RadiusSq)
			require.GreaterOrEqual(t, distSq, triangle.Circle.RadiusSq-slack,
				"point %d %v is inside the circumcircle of %s", i, p, &triangle)
		}
	}
}

func AssertAreaConserved(t *testing.T, tri *Triangulation) {
	t.Helper()
	var total float64
	for _, triangle := range tri.triangles.All() {
		a, b, c := tri.points[triangle.Indices[0]], tri.points[triangle.Indices[1]], tri.points[triangle.Indices[2]]
		area := SignedArea(a, b, c)
		require.Greater(t, area, 0.0, "triangle %v is flat or wound the wrong way", triangle.Indices)
		total += area
	}
	require.InDelta(t, squareArea, total, Tolerance, "sum of the triangle areas must equal the square")
}

// Snapshot of the triangle keys, for checking that a failed insertion left
// nothing behind.
func triangleKeys(tri *Triangulation) map[TriangleKey]Triangle {
	result := make(map[TriangleKey]Triangle)
	for _, triangle := range tri.triangles.All() {
		result[triangle.Key()] = triangle
	}
	return result
}
