package cellunion

import (
	"encoding/binary"
	"errors"

	"github.com/bsm/extsort"
	"github.com/golang/geo/s2"
)

var errInvalidCellID = errors.New("cellunion: invalid cell ID")

// SorterOptions define Sorter specific options.
type SorterOptions struct {
	// An optional temporary directory. Default: os.TempDir()
	TempDir string
}

func (o *SorterOptions) norm() *SorterOptions {
	var oo SorterOptions
	if o != nil {
		oo = *o
	}
	return &oo
}

// Sorter builds normalized unions from cell ID streams that may not fit
// in memory. Appended IDs are spilled to disk and sorted externally;
// the sorted stream is then folded straight into normal form without
// ever materializing the raw input.
type Sorter struct {
	x *extsort.Sorter
	t [8]byte
}

// NewSorter creates a sorter.
func NewSorter(o *SorterOptions) *Sorter {
	o = o.norm()
	return &Sorter{
		x: extsort.New(&extsort.Options{WorkDir: o.TempDir}),
	}
}

// Append appends a cell ID to the sorter. Duplicates are permitted and
// collapse during Union.
func (s *Sorter) Append(cellID s2.CellID) error {
	if !cellID.IsValid() {
		return errInvalidCellID
	}

	binary.BigEndian.PutUint64(s.t[:], uint64(cellID))
	return s.x.Append(s.t[:])
}

// Union sorts the appended cell IDs and collapses them into a
// normalized union. The sorter can be reused for a new stream
// afterwards.
func (s *Sorter) Union() (Union, error) {
	iter, err := s.x.Sort()
	if err != nil {
		return nil, err
	}

	var out Union
	for iter.Next() {
		out = out.push(s2.CellID(binary.BigEndian.Uint64(iter.Data())))
	}
	if err := iter.Err(); err != nil {
		_ = iter.Close()
		return nil, err
	}
	return out, iter.Close()
}

// Close closes the sorter and releases all resources.
func (s *Sorter) Close() error {
	return s.x.Close()
}
