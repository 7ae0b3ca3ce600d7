package cellunion

import (
	"errors"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// maxLevel is the finest cell level of the hierarchy.
const maxLevel = 30

// ErrNotSupported is returned by the binary codec methods. A wire
// format for unions has deliberately not been specified.
var ErrNotSupported = errors.New("cellunion: not supported")

// Union implements the s2.Region interface.
var _ s2.Region = Union(nil)

// LeafCellsCovered returns the number of leaf cells covered by the
// union. This is no more than 6*2^60 for the whole sphere.
func (u Union) LeafCellsCovered() uint64 {
	var n uint64
	for _, id := range u {
		n += 1 << uint(2*(maxLevel-id.Level()))
	}
	return n
}

// AverageBasedArea approximates the area of the union as the number of
// leaf cells covered multiplied by the average area of a leaf cell. It
// does not account for cell distortion and may be off by up to a factor
// of 1.7, but it is cheap and proportional to LeafCellsCovered, which
// makes it the best choice for comparing relative areas.
func (u Union) AverageBasedArea() float64 {
	return s2.AvgAreaMetric.Value(maxLevel) * float64(u.LeafCellsCovered())
}

// ApproxArea approximates the area of the union by summing the
// approximate area of each cell.
func (u Union) ApproxArea() float64 {
	var area float64
	for _, id := range u {
		area += s2.CellFromCellID(id).ApproxArea()
	}
	return area
}

// ExactArea calculates the area of the union by summing the exact area
// of each cell.
func (u Union) ExactArea() float64 {
	var area float64
	for _, id := range u {
		area += s2.CellFromCellID(id).ExactArea()
	}
	return area
}

// CapBound returns a spherical cap containing the union.
func (u Union) CapBound() s2.Cap {
	if len(u) == 0 {
		return s2.EmptyCap()
	}

	// Compute the approximate centroid of the region. This does not
	// produce the cap of minimal area, but it is usually close.
	var centroid r3.Vector
	for _, id := range u {
		area := s2.AvgAreaMetric.Value(id.Level())
		centroid = centroid.Add(id.Point().Mul(area))
	}

	axis := s2.PointFromCoords(1, 0, 0)
	if centroid != (r3.Vector{}) {
		axis = s2.Point{Vector: centroid.Normalize()}
	}

	// Use the centroid as the cap axis and expand the cap to contain
	// the bounds of every cell. Bounding the cell vertices alone is not
	// sufficient, the cap may be concave and cover more than one
	// hemisphere.
	bound := s2.CapFromPoint(axis)
	for _, id := range u {
		bound = bound.AddCap(s2.CellFromCellID(id).CapBound())
	}
	return bound
}

// RectBound returns a latitude-longitude rectangle containing the
// union.
func (u Union) RectBound() s2.Rect {
	bound := s2.EmptyRect()
	for _, id := range u {
		bound = bound.Union(s2.CellFromCellID(id).RectBound())
	}
	return bound
}

// CellUnionBound returns a small collection of cells whose union covers
// the region.
func (u Union) CellUnionBound() []s2.CellID {
	return u.CapBound().CellUnionBound()
}

// MarshalBinary implements encoding.BinaryMarshaler. It always fails
// with ErrNotSupported.
func (u Union) MarshalBinary() ([]byte, error) {
	return nil, ErrNotSupported
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It always
// fails with ErrNotSupported.
func (u *Union) UnmarshalBinary(_ []byte) error {
	return ErrNotSupported
}
