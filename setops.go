package cellunion

import (
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// FromUnion returns the normalized union of x and y.
func FromUnion(x, y Union) Union {
	out := make(Union, 0, len(x)+len(y))
	out = append(out, x...)
	out = append(out, y...)
	out.Normalize()
	return out
}

// FromIntersection returns the intersection of x and y. Both inputs
// must be normalized.
func FromIntersection(x, y Union) Union {
	var out Union

	// Walk the two sorted sequences, comparing leaf spans. Cells on the
	// hierarchy are either nested or disjoint, so whenever two spans
	// overlap one of the cells contains the other.
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		a, b := x[i], y[j]
		switch {
		case a.RangeMax() < b.RangeMin():
			i++
		case b.RangeMax() < a.RangeMin():
			j++
		case a.Contains(b):
			out = append(out, b)
			j++
		default:
			out = append(out, a)
			i++
		}
	}

	// The result is sorted and free of contained cells, but four
	// emitted cells may still form a sibling group.
	out.Normalize()
	return out
}

// FromIntersectionWithCellID returns the intersection of x with the
// single cell id, which is useful for splitting a union into chunks.
// x must be normalized.
func FromIntersectionWithCellID(x Union, id s2.CellID) Union {
	var out Union
	if x.ContainsCellID(id) {
		out = append(out, id)
		return out
	}

	idmin, idmax := id.RangeMin(), id.RangeMax()
	i := sort.Search(len(x), func(i int) bool { return x[i] >= idmin })
	for ; i < len(x) && x[i] <= idmax; i++ {
		out = append(out, x[i])
	}
	out.Normalize()
	return out
}

// FromDifference returns the difference x - y. Both inputs must be
// normalized.
func FromDifference(x, y Union) Union {
	var out Union
	for _, id := range x {
		differenceInternal(id, y, &out)
	}
	out.Normalize()
	return out
}

func differenceInternal(id s2.CellID, y Union, out *Union) {
	if !y.IntersectsCellID(id) {
		*out = append(*out, id)
		return
	}
	if y.ContainsCellID(id) {
		return
	}
	for _, child := range id.Children() {
		differenceInternal(child, y, out)
	}
}

// ExpandAtLevel expands the union by adding a rim of cells at the given
// level around its boundary. For each cell c in the union all cells at
// the given level abutting c are added. If c is finer than the level,
// the cells abutting its ancestor at that level are added along with
// the ancestor itself, as a cell at the expansion level rarely abuts a
// smaller cell.
//
// Note that the size of the output is exponential in the difference
// between the expansion level and the level of the finest input cell.
// ExpandByRadius is easier to use for most applications.
func (u *Union) ExpandAtLevel(level int) {
	out := make(Union, 0, len(*u))
	for _, id := range *u {
		if id.Level() > level {
			id = id.Parent(level)
		}
		out = append(out, id)
		out = append(out, id.AllNeighbors(level)...)
	}
	*u = out
	u.Normalize()
}

// ExpandByRadius expands the union to contain all points within
// minRadius of it, without using cells that are more than maxLevelDiff
// levels finer than the coarsest cell in the input. maxLevelDiff
// controls the tradeoff between accuracy and output size when a large
// region is expanded by a small amount: with maxLevelDiff == 4 the
// region is expanded by roughly 1/16 the width of its coarsest cell.
func (u *Union) ExpandByRadius(minRadius s1.Angle, maxLevelDiff int) {
	minLevel := maxLevel
	for _, id := range *u {
		if level := id.Level(); level < minLevel {
			minLevel = level
		}
	}

	// The finest level at which cells are still at least minRadius
	// wide, so that a single rim dilates by minRadius everywhere.
	radiusLevel := s2.MinWidthMetric.MaxLevel(minRadius.Radians())
	if radiusLevel == 0 && minRadius.Radians() > s2.MinWidthMetric.Value(0) {
		// Even face cells are narrower than minRadius; a second rim of
		// face cells is required.
		u.ExpandAtLevel(0)
	}
	if level := minLevel + maxLevelDiff; level < radiusLevel {
		radiusLevel = level
	}
	u.ExpandAtLevel(radiusLevel)
}

// FromMinMax returns the union covering the leaf cells between lo and
// hi inclusive.
//
// REQUIRES: lo.IsLeaf(), hi.IsLeaf(), lo <= hi.
func FromMinMax(lo, hi s2.CellID) Union {
	var out Union

	// Repeatedly grow the cursor to the largest cell that starts at it
	// and still fits inside the window, then jump past the emitted
	// block. The result is in normal form by construction.
	for id := lo.MaxTile(hi); id != hi.Next(); id = id.Next().MaxTile(hi) {
		out = append(out, id)
	}
	return out
}

// FromBeginEnd returns the union covering the half-open range of leaf
// cells [begin, end). The result is empty if begin == end.
//
// REQUIRES: begin.IsLeaf(), end.IsLeaf(), begin <= end.
func FromBeginEnd(begin, end s2.CellID) Union {
	if begin == end {
		return Union{}
	}
	return FromMinMax(begin, end.Prev())
}
