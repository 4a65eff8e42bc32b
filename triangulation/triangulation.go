// Package triangulation maintains a planar Delaunay triangulation of the
// square [-1,1]×[-1,1] under incremental point insertion.
//
// After every successful AddVertex, no triangle's circumcircle strictly
// contains a vertex other than its own three. A Triangulation is not safe for
// concurrent use; hosts that read and write from different goroutines must
// serialize access themselves.
package triangulation

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// The seed points. The corners of the bounding square come first, then one
// interior point which splits the square into four triangles.
var seedPoints = []Point{
	{-1, -1},
	{1, -1},
	{1, 1},
	{-1, 1},
	{-0.5, -0.25},
}

var seedTriangles = [][3]int{
	{4, 0, 1},
	{4, 1, 2},
	{4, 2, 3},
	{4, 3, 0},
}

type Triangulation struct {
	// Append-only. A point's index never changes once it is stored.
	points    []Point
	triangles *TriangleSet
	logger    *zap.Logger
}

type Option func(*Triangulation)

// Log insertion steps at debug level. By default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Triangulation) {
		if logger == nil {
			logger = zap.NewNop()
		}
		t.logger = logger
	}
}

func New(options ...Option) *Triangulation {
	t := &Triangulation{
		points:    append([]Point(nil), seedPoints...),
		triangles: NewTriangleSet(),
		logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(t)
	}
	for _, indices := range seedTriangles {
		if _, err := t.triangles.Add(indices, t.points); err != nil {
			// The seed is fixed, so this can only be a bug
			panic(err)
		}
	}
	return t
}

// Insert a point and restore the Delaunay condition around it.
//
// On failure, neither the points nor the triangles change: the point is only
// stored once every replacement triangle has been solved and checked against
// the store.
func (t *Triangulation) AddVertex(p Point) (err error) {
	defer func() {
		recoveredErr := HandleTriangulationPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	log := t.logger.With(zap.Stringer("point", p))
	if err := t.validate(p); err != nil {
		log.Debug("rejected vertex", zap.Error(err))
		return err
	}

	newIndex := len(t.points)
	// Tentative point list. The new point is visible to the solver, but the
	// store itself isn't extended until the commit below.
	points := append(t.points[:len(t.points):len(t.points)], p)

	conflicts := t.triangles.FindConflicts(p)
	for i := range conflicts {
		log.Debug("near", zap.Stringer("triangle", &conflicts[i]))
	}

	var fan [][3]int
	switch len(conflicts) {
	case 0:
		err = errors.Wrapf(ErrNoContainingTriangle, "point %v", p)
		log.Debug("rejected vertex", zap.Error(err))
		return err
	case 1:
		// A single conflicting triangle is its own cavity; split it into three.
		conflict := conflicts[0]
		for i := 0; i < 3; i++ {
			edge := conflict.Edge(i)
			fan = append(fan, [3]int{newIndex, edge.From, edge.To})
		}
	default:
		contour, err := buildContour(conflicts, t.points, p)
		if err != nil {
			err = errors.Wrapf(err, "point %v", p)
			log.Debug("rejected vertex", zap.Error(err))
			return err
		}
		for _, edge := range contour {
			fan = append(fan, [3]int{newIndex, edge.From, edge.To})
		}
	}

	replacements := make([]*Triangle, 0, len(fan))
	for _, indices := range fan {
		triangle, err := newTriangle(indices, points)
		if err != nil {
			err = errors.Wrapf(err, "point %v", p)
			log.Debug("rejected vertex", zap.Error(err))
			return err
		}
		replacements = append(replacements, triangle)
	}

	// The replacements all use the new index, so none of them can be stored yet
	for _, triangle := range replacements {
		if t.triangles.Contains(triangle.Key()) {
			fatalf("duplicate triangle %v", triangle.Key())
		}
	}

	// Commit
	t.points = points
	for i := range conflicts {
		log.Debug("remove", zap.Stringer("triangle", &conflicts[i]))
		t.triangles.Remove(conflicts[i].Key())
	}
	for _, triangle := range replacements {
		log.Debug("add", zap.Stringer("triangle", triangle))
		t.triangles.insert(triangle)
	}
	log.Debug("added vertex",
		zap.Int("index", newIndex),
		zap.Int("removed", len(conflicts)),
		zap.Int("added", len(replacements)),
		zap.Int("triangles", t.triangles.Len()),
	)
	return nil
}

// Reject points the triangulation can never hold: those outside the bounding
// square, and duplicates of existing vertices. Without the bounds check, a
// point slightly outside the square but inside some circumcircle would be
// accepted and grow the covered region.
func (t *Triangulation) validate(p Point) error {
	x, y := float64(p.X()), float64(p.Y())
	if !isFinite(x) || !isFinite(y) || math.Abs(x) > 1 || math.Abs(y) > 1 {
		return errors.Wrapf(ErrNoContainingTriangle, "point %v is outside the bounding square", p)
	}
	for i, q := range t.points {
		if q == p {
			return errors.Wrapf(ErrDegenerate, "point %v coincides with vertex %d", p, i)
		}
	}
	return nil
}

// Snapshot of every live triangle for rendering. Order is unspecified.
func (t *Triangulation) Triangles() []TriangleView {
	all := t.triangles.All()
	views := make([]TriangleView, len(all))
	for i, triangle := range all {
		views[i] = t.view(triangle)
	}
	return views
}

func (t *Triangulation) view(triangle Triangle) TriangleView {
	return TriangleView{
		Vertices: [3]Point{
			t.points[triangle.Indices[0]],
			t.points[triangle.Indices[1]],
			t.points[triangle.Indices[2]],
		},
		Center: triangle.Circle.Center,
		Radius: math.Sqrt(triangle.Circle.RadiusSq),
	}
}

// Copy of the point store
func (t *Triangulation) Points() []Point {
	return append([]Point(nil), t.points...)
}

func (t *Triangulation) NumPoints() int {
	return len(t.points)
}

// Number of live triangles
func (t *Triangulation) Len() int {
	return t.triangles.Len()
}
