package cellunion

import (
	"sort"

	"github.com/golang/geo/s2"
)

// ContainsCellID reports whether the union contains the given cell ID.
// Containment is defined with respect to regions, e.g. a cell contains
// its four children. This is a fast operation, logarithmic in the size
// of the union.
//
// Each cell occupies a contiguous span of the space-filling curve and
// its ID is the position at the centre of that span. The cell that
// directly follows id in the sorted sequence contains it iff its span
// starts at or before id; the cell directly preceding it contains it
// iff its span ends at or after id. No other cell can.
func (u Union) ContainsCellID(id s2.CellID) bool {
	i := sort.Search(len(u), func(i int) bool { return u[i] >= id })
	if i < len(u) && u[i].RangeMin() <= id {
		return true
	}
	return i > 0 && u[i-1].RangeMax() >= id
}

// IntersectsCellID reports whether the union intersects the given cell
// ID. This is a fast operation, logarithmic in the size of the union.
func (u Union) IntersectsCellID(id s2.CellID) bool {
	i := sort.Search(len(u), func(i int) bool { return u[i] >= id })
	if i < len(u) && u[i].RangeMin() <= id.RangeMax() {
		return true
	}
	return i > 0 && u[i-1].RangeMax() >= id.RangeMin()
}

// ContainsUnion reports whether the union contains every cell of o.
// Both unions must be normalized; the check is a single linear merge
// over the two sorted sequences.
func (u Union) ContainsUnion(o Union) bool {
	i := 0
	for _, id := range o {
		for i < len(u) && u[i].RangeMax() < id.RangeMin() {
			i++
		}
		// In normal form a cell can only be covered by a single stored
		// cell, never stitched together from several.
		if i == len(u) || u[i].RangeMin() > id.RangeMin() || u[i].RangeMax() < id.RangeMax() {
			return false
		}
	}
	return true
}

// IntersectsUnion reports whether the union intersects any cell of o.
// Both unions must be normalized.
func (u Union) IntersectsUnion(o Union) bool {
	i, j := 0, 0
	for i < len(u) && j < len(o) {
		if u[i].RangeMax() < o[j].RangeMin() {
			i++
		} else if o[j].RangeMax() < u[i].RangeMin() {
			j++
		} else {
			return true
		}
	}
	return false
}

// ContainsCell reports whether the union contains the given cell.
func (u Union) ContainsCell(c s2.Cell) bool { return u.ContainsCellID(c.ID()) }

// IntersectsCell reports whether the union intersects the given cell.
func (u Union) IntersectsCell(c s2.Cell) bool { return u.IntersectsCellID(c.ID()) }

// ContainsPoint reports whether the union contains the point p, which
// does not need to be normalized.
func (u Union) ContainsPoint(p s2.Point) bool {
	return u.ContainsCell(s2.CellFromPoint(p))
}
