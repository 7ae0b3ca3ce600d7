/*
Package cellunion implements regions assembled from S2 cells of various
sizes, built on top of the cell hierarchy of github.com/golang/geo/s2.

A Union is a sequence of cell IDs held in normal form: sorted, free of
cells contained by other cells, and with every group of four sibling
cells collapsed into their parent. Normal form makes a union canonical
for its point set, which allows set algebra (union, intersection,
difference), logarithmic membership tests, neighbor-based dilation and
area calculations to operate on plain sorted slices.

Unions that do not fit in memory can be assembled through a Sorter,
which spills cell IDs to disk and folds the externally sorted stream
straight into normal form.
*/
package cellunion
