package triangulation

import "github.com/pkg/errors"

// Failures a caller can act on. They are returned wrapped with context, so
// match them with errors.Is.
var (
	// Three points of a would-be triangle are collinear (or coincide), so it has
	// no finite circumcircle.
	ErrDegenerate = errors.New("degenerate triangle")
	// No triangle's circumcircle strictly contains the point. It lies outside the
	// bounding square, or exactly on circumcircle boundaries.
	ErrNoContainingTriangle = errors.New("no containing triangle")
	// The boundary of the conflicting triangles is not a single closed loop.
	ErrMalformedCavity = errors.New("malformed cavity")
)

// Broken internal invariants (a duplicate triangle key, removing a triangle
// that isn't there) would mean a bug in the store, not bad input. Threading
// those up through every helper adds nothing, so we panic with a
// TriangulationError and the public API recovers to convert it to an error.

type TriangulationError struct {
	error
}

// Panic with a TriangulationError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulationError{errors.Errorf(format, args...)})
}

// Convert a recovered TriangulationError back into an error. Any other panic,
// including runtime errors, is a bug and is re-raised.
func HandleTriangulationPanicRecover(r interface{}) error {
	if r != nil {
		if triangulationError, ok := r.(TriangulationError); ok {
			return triangulationError.error
		}
		panic(r)
	}
	return nil
}
