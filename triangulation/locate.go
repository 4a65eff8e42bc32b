package triangulation

// Find every triangle whose circumcircle strictly contains p. These are the
// triangles that stop being Delaunay once p is added.
//
// This is a linear scan over the triangle set. Triangulations built
// interactively are small; a large one would want a spatial index here, and
// nothing else would need to change.
func (s *TriangleSet) FindConflicts(p Point) []Triangle {
	var conflicts []Triangle
	for _, t := range s.triangles {
		if t.Circle.Contains(p) {
			conflicts = append(conflicts, *t)
		}
	}
	return conflicts
}
