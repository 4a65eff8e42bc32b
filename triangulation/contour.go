package triangulation

import "github.com/pkg/errors"

// Build the contour of the cavity formed by the conflicting triangles: the
// directed boundary edges of their union, wound the same way as the
// triangles. Fanning p to each edge re-triangulates the cavity.
//
// Every edge of every conflicting triangle is classified by which side of it p
// lies on. If p is on the inside (the same side as the triangle's own
// interior), the edge is a boundary candidate. If p is on the line through an
// edge that no other conflicting triangle shares, the cavity can't be fanned
// without a flat triangle. Otherwise the edge can't be on
// the boundary, and its reverse is remembered as a "wrong" edge. An interior
// edge shared by two conflicting triangles shows up once in each direction, so
// the candidate copy is cancelled by the wrong copy. What survives is the
// outer boundary.
func buildContour(conflicts []Triangle, points []Point, p Point) ([]Edge, error) {
	edges := make(EdgeSet)
	for _, t := range conflicts {
		for i := 0; i < 3; i++ {
			edges.Add(t.Edge(i))
		}
	}

	var candidates []Edge
	wrongEdges := make(EdgeSet)
	for _, t := range conflicts {
		for i := 0; i < 3; i++ {
			edge := t.Edge(i)
			side := edgeSide(edge, points, p)
			switch {
			case side < 0:
				candidates = append(candidates, edge)
			case side == 0 && !edges.Contains(edge.Reverse()):
				// p is on the line through an outer edge, so the fan triangle over it
				// would be flat
				return nil, errors.Wrapf(ErrDegenerate, "point %v is collinear with contour edge %v", p, edge)
			default:
				wrongEdges.Add(edge.Reverse())
			}
		}
	}

	contour := make([]Edge, 0, len(candidates))
	for _, edge := range candidates {
		if !wrongEdges.Contains(edge) {
			contour = append(contour, edge)
		}
	}

	if err := checkClosedLoop(contour); err != nil {
		return nil, err
	}
	return contour, nil
}

// Negative when p is strictly on the inner side of the edge, zero when it is on
// the edge's line.
func edgeSide(edge Edge, points []Point, p Point) float64 {
	toCur := Sub(p, points[edge.From])
	toNext := Sub(p, points[edge.To])
	return Cross(toNext, toCur)
}

// The contour must be one closed loop: at least three edges, each vertex
// starting at most one edge, and walking To -> From from the first edge visits
// every edge and comes back around.
func checkClosedLoop(contour []Edge) error {
	if len(contour) < 3 {
		return errors.Wrapf(ErrMalformedCavity, "contour has %d edges", len(contour))
	}

	next := make(map[int]int, len(contour))
	for _, edge := range contour {
		if _, ok := next[edge.From]; ok {
			return errors.Wrapf(ErrMalformedCavity, "vertex %d starts more than one contour edge", edge.From)
		}
		next[edge.From] = edge.To
	}

	start := contour[0].From
	current := start
	for steps := 0; steps < len(contour); steps++ {
		to, ok := next[current]
		if !ok {
			return errors.Wrapf(ErrMalformedCavity, "contour is open at vertex %d", current)
		}
		current = to
		if current == start && steps != len(contour)-1 {
			return errors.Wrapf(ErrMalformedCavity, "contour closes after %d of %d edges", steps+1, len(contour))
		}
	}
	if current != start {
		return errors.Wrapf(ErrMalformedCavity, "contour does not return to vertex %d", start)
	}
	return nil
}
