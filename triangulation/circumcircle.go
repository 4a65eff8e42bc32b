package triangulation

import (
	"math"

	"github.com/pkg/errors"
)

// Compute the circle through three points. Every vertex is weighted by its
// squared distance from the origin, which gives the center as a ratio of
// determinants:
//
//	a = | x y 1 |    b = | r y 1 |    c = | r x 1 |
//
// with center (b/2a, -c/2a). The radius is measured back to v1.
//
// A zero (or non-finite) a means the points are collinear, and there is no
// circle to cache.
func SolveCircumcircle(v1, v2, v3 Point) (Circle, error) {
	p1, p2, p3 := v1.Vec64(), v2.Vec64(), v3.Vec64()
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := p3[0], p3[1]

	r1 := p1.Dot(p1)
	r2 := p2.Dot(p2)
	r3 := p3.Dot(p3)

	a := x1*y2 + y1*x3 + x2*y3 - x3*y2 - x2*y1 - y3*x1
	if a == 0 || !isFinite(a) {
		return Circle{}, errors.Wrapf(ErrDegenerate, "points %v, %v, %v are collinear", v1, v2, v3)
	}
	b := r1*y2 + y1*r3 + r2*y3 - r3*y2 - r2*y1 - y3*r1
	c := r1*x2 + x1*r3 + r2*x3 - r3*x2 - r2*x1 - x3*r1

	center := Vector{b / (2 * a), -c / (2 * a)}
	radiusSq := DistanceSq(center, p1)
	if !isFinite(center[0]) || !isFinite(center[1]) || !isFinite(radiusSq) {
		return Circle{}, errors.Wrapf(ErrDegenerate, "points %v, %v, %v have no finite circumcircle", v1, v2, v3)
	}
	return Circle{Center: center, RadiusSq: radiusSq}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
