package cellunion

import (
	"sort"

	"github.com/golang/geo/s2"
)

// Union is a region consisting of cells of various sizes.
//
// It is normalized if it is sorted and contains no redundancy.
// Specifically, it may not contain the same cell ID twice, nor a cell ID
// contained by another, nor the four sibling cells that are children of
// a single higher-level cell. All methods except InitRaw and InitRawSwap
// maintain normal form.
type Union []s2.CellID

// New returns a normalized union of the given cell IDs.
func New(ids ...s2.CellID) Union {
	var u Union
	u.Init(ids)
	return u
}

// Init replaces the contents of the union with a copy of ids and
// normalizes it.
func (u *Union) Init(ids []s2.CellID) {
	u.InitRaw(ids)
	u.Normalize()
}

// InitRaw replaces the contents of the union with a copy of ids without
// normalizing. The union must be normalized before any calculations are
// performed on it; it is the caller's responsibility to ensure that the
// input already is.
func (u *Union) InitRaw(ids []s2.CellID) {
	*u = append((*u)[:0], ids...)
}

// InitSwap takes ownership of ids, clears the source slice and
// normalizes the union.
func (u *Union) InitSwap(ids *[]s2.CellID) {
	u.InitRawSwap(ids)
	u.Normalize()
}

// InitRawSwap takes ownership of ids and clears the source slice,
// without normalizing. See InitRaw for the caller's obligations.
func (u *Union) InitRawSwap(ids *[]s2.CellID) {
	*u = *ids
	*ids = nil
}

// Detach moves the backing slice into ids and leaves the union empty.
// Previous contents of ids are lost. This is the opposite of InitRawSwap.
func (u *Union) Detach(ids *[]s2.CellID) {
	*ids = *u
	*u = nil
}

// Pack reallocates the backing slice if more than excess elements are
// allocated but unused. This reduces memory usage when many unions need
// to be held in memory at once.
func (u *Union) Pack(excess int) {
	if cap(*u)-len(*u) > excess {
		packed := make(Union, len(*u))
		copy(packed, *u)
		*u = packed
	}
}

// NumCells returns the number of cells in the union.
func (u Union) NumCells() int { return len(u) }

// CellID returns the cell ID at position i.
func (u Union) CellID(i int) s2.CellID { return u[i] }

// CellIDs exposes the backing slice for direct iteration.
func (u Union) CellIDs() []s2.CellID { return u }

// Clone returns a deep copy of the union.
func (u Union) Clone() Union {
	if u == nil {
		return nil
	}
	cloned := make(Union, len(u))
	copy(cloned, u)
	return cloned
}

// Equal reports whether two unions contain the same cell sequence. Both
// must be normalized for this to be an equality of regions.
func (u Union) Equal(o Union) bool {
	if len(u) != len(o) {
		return false
	}
	for i, id := range u {
		if o[i] != id {
			return false
		}
	}
	return true
}

// Normalize sorts the cells, discards cells that are contained by other
// cells and replaces groups of four sibling cells by their parent,
// cascading upwards where possible. It returns true if the number of
// cells was reduced.
func (u *Union) Normalize() bool {
	n := len(*u)
	sort.Slice(*u, func(i, j int) bool { return (*u)[i] < (*u)[j] })

	output := make(Union, 0, n)
	for _, ci := range *u {
		output = output.push(ci)
	}
	*u = output
	return len(output) < n
}

// push appends ci to a sorted sequence that is free of redundancy,
// re-establishing normal form. The candidate must be >= every cell
// already accepted, except for cells it contains.
func (u Union) push(ci s2.CellID) Union {
	// Ignore the candidate if it is contained by the last accepted
	// cell. Sorting makes the last cell the only possible container.
	if n := len(u); n > 0 && u[n-1].Contains(ci) {
		return u
	}

	// Discard previously accepted cells contained by the candidate.
	// They form a contiguous trailing run, again due to sorting.
	j := len(u) - 1
	for j >= 0 && ci.Contains(u[j]) {
		j--
	}
	u = u[:j+1]

	// Collapse the last three cells plus the candidate into their
	// parent whenever they are four siblings. Loop, because the parent
	// may complete an older sibling group in turn.
	for len(u) >= 3 {
		fin := u[len(u)-3:]

		// cheap XOR gate; necessary but not sufficient
		if fin[0]^fin[1]^fin[2]^ci != 0 {
			break
		}
		if ci.Level() == 0 {
			break
		}

		parent := ci.Parent(ci.Level() - 1)
		children := parent.Children()
		if fin[0] != children[0] || fin[1] != children[1] || fin[2] != children[2] || ci != children[3] {
			break
		}
		u = u[:len(u)-3]
		ci = parent
	}
	return append(u, ci)
}

// Denormalize returns an expanded copy of the cell sequence in which
// every cell whose level is less than minLevel, or where
// (level - minLevel) is not a multiple of levelMod, is replaced by its
// descendants until both conditions hold or the maximum level is
// reached. The result is a flat covering and intentionally not in
// normal form.
func (u Union) Denormalize(minLevel, levelMod int) []s2.CellID {
	output := make([]s2.CellID, 0, len(u))
	for _, id := range u {
		level := id.Level()
		newLevel := level
		if newLevel < minLevel {
			newLevel = minLevel
		}
		if levelMod > 1 {
			// Round up until (newLevel - minLevel) is a multiple of
			// levelMod. maxLevel is a multiple of 1, 2 and 3.
			newLevel += (maxLevel - (newLevel - minLevel)) % levelMod
			if newLevel > maxLevel {
				newLevel = maxLevel
			}
		}
		if newLevel == level {
			output = append(output, id)
		} else {
			end := id.ChildEndAtLevel(newLevel)
			for ci := id.ChildBeginAtLevel(newLevel); ci != end; ci = ci.Next() {
				output = append(output, ci)
			}
		}
	}
	return output
}
