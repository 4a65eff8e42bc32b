package triangulation

import "github.com/pkg/errors"

// The set of live triangles. Triangles are kept in a slice for cheap
// enumeration, with a map from key to slot for membership and removal. Removal
// swaps the last triangle into the hole, so enumeration order is not stable
// across mutations.
type TriangleSet struct {
	triangles []*Triangle
	slots     map[TriangleKey]int
}

func NewTriangleSet() *TriangleSet {
	return &TriangleSet{slots: make(map[TriangleKey]int)}
}

// Build a triangle over the given point indices, solving its circumcircle.
// Nothing is stored.
func newTriangle(indices [3]int, points []Point) (*Triangle, error) {
	for _, i := range indices {
		if i < 0 || i >= len(points) {
			fatalf("triangle %v references point %d, but only %d points exist", indices, i, len(points))
		}
	}
	circle, err := SolveCircumcircle(points[indices[0]], points[indices[1]], points[indices[2]])
	if err != nil {
		return nil, errors.Wrapf(err, "triangle %v", indices)
	}
	return &Triangle{Indices: indices, Circle: circle}, nil
}

// Solve and store a triangle. A degenerate triangle is not stored, and the
// error is returned.
func (s *TriangleSet) Add(indices [3]int, points []Point) (TriangleKey, error) {
	t, err := newTriangle(indices, points)
	if err != nil {
		return TriangleKey{}, err
	}
	s.insert(t)
	return t.Key(), nil
}

func (s *TriangleSet) insert(t *Triangle) {
	key := t.Key()
	if _, ok := s.slots[key]; ok {
		fatalf("duplicate triangle %v", key)
	}
	s.slots[key] = len(s.triangles)
	s.triangles = append(s.triangles, t)
}

func (s *TriangleSet) Remove(key TriangleKey) {
	slot, ok := s.slots[key]
	if !ok {
		fatalf("cannot remove missing triangle %v", key)
	}
	last := len(s.triangles) - 1
	if slot != last {
		moved := s.triangles[last]
		s.triangles[slot] = moved
		s.slots[moved.Key()] = slot
	}
	s.triangles[last] = nil
	s.triangles = s.triangles[:last]
	delete(s.slots, key)
}

func (s *TriangleSet) Contains(key TriangleKey) bool {
	_, ok := s.slots[key]
	return ok
}

func (s *TriangleSet) Get(key TriangleKey) (Triangle, bool) {
	slot, ok := s.slots[key]
	if !ok {
		return Triangle{}, false
	}
	return *s.triangles[slot], true
}

// Copies of every live triangle
func (s *TriangleSet) All() []Triangle {
	result := make([]Triangle, len(s.triangles))
	for i, t := range s.triangles {
		result[i] = *t
	}
	return result
}

func (s *TriangleSet) Len() int {
	return len(s.triangles)
}
