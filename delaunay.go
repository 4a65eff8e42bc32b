// An incremental Delaunay triangulation package for Go.
//
// This package maintains a triangulation of the square [-1,1]×[-1,1] as points
// are inserted one at a time. After every successful insertion, no triangle's
// circumcircle contains any other vertex.
package delaunay

import (
	"github.com/osuushi/delaunay/triangulation"
	"github.com/pkg/errors"
)

type Point = triangulation.Point
type TriangleView = triangulation.TriangleView
type Triangulation = triangulation.Triangulation
type Option = triangulation.Option

var (
	ErrDegenerate           = triangulation.ErrDegenerate
	ErrNoContainingTriangle = triangulation.ErrNoContainingTriangle
	ErrMalformedCavity      = triangulation.ErrMalformedCavity
)

var WithLogger = triangulation.WithLogger

func Pt(x, y float32) Point {
	return triangulation.Pt(x, y)
}

// A triangulation of the bounding square, split into four triangles around
// an interior seed point.
func New(options ...Option) *Triangulation {
	return triangulation.New(options...)
}

// Insert each point in order, stopping at the first one that can't be
// inserted. The triangulation is returned either way, holding every point
// before the failing one.
//
// Points must be in normalized device coordinates: both axes in [-1, 1].
func Triangulate(points []Point, options ...Option) (*Triangulation, error) {
	t := New(options...)
	for i, p := range points {
		if err := t.AddVertex(p); err != nil {
			return t, errors.Wrapf(err, "point %d", i)
		}
	}
	return t, nil
}
