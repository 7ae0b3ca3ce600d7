package cellunion_test

import (
	"math/rand"

	"github.com/bsm/cellunion"
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

var _ = Describe("set algebra", func() {
	var rnd *rand.Rand

	BeforeEach(func() {
		rnd = rand.New(rand.NewSource(5))
	})

	It("should build unions", func() {
		a := s2.CellIDFromFace(1).Children()[0]
		b := s2.CellIDFromFace(2).Children()[0]
		Expect(cellunion.FromUnion(cellunion.New(a), cellunion.New(b))).To(Equal(cellunion.New(a, b)))

		// siblings re-collapse across the inputs
		ch := s2.CellIDFromFace(3).Children()
		x := cellunion.New(ch[0], ch[2])
		y := cellunion.New(ch[1], ch[3])
		Expect(cellunion.FromUnion(x, y)).To(Equal(cellunion.Union{s2.CellIDFromFace(3)}))
	})

	It("should treat the empty union as identity", func() {
		x := randomUnion(rnd, 20)
		Expect(cellunion.FromUnion(x, nil)).To(Equal(x))
		Expect(cellunion.FromUnion(nil, x)).To(Equal(x))
		Expect(cellunion.FromIntersection(x, nil)).To(BeEmpty())
		Expect(cellunion.FromDifference(x, nil)).To(Equal(x))
		Expect(cellunion.FromDifference(nil, x)).To(BeEmpty())
	})

	It("should intersect with a cell", func() {
		x := cellunion.New(s2.CellIDFromFace(1).Children()[0], s2.CellIDFromFace(2).Children()[0])
		id := s2.CellIDFromFace(1).Children()[0].Children()[2]
		Expect(cellunion.FromIntersectionWithCellID(x, id)).To(Equal(cellunion.Union{id}))
	})

	It("should intersect with a cell covering several members", func() {
		ch := s2.CellIDFromFace(1).Children()[0].Children()
		x := cellunion.New(ch[1], ch[3], s2.CellIDFromFace(4))

		got := cellunion.FromIntersectionWithCellID(x, s2.CellIDFromFace(1).Children()[0])
		Expect(got).To(Equal(cellunion.New(ch[1], ch[3])))

		Expect(cellunion.FromIntersectionWithCellID(x, s2.CellIDFromFace(5))).To(BeEmpty())
	})

	It("should intersect unions", func() {
		face := s2.CellIDFromFace(1)
		x := cellunion.New(face)
		y := cellunion.New(face.Children()[1], s2.CellIDFromFace(3))
		Expect(cellunion.FromIntersection(x, y)).To(Equal(cellunion.Union{face.Children()[1]}))
	})

	It("should subtract unions", func() {
		face := s2.CellIDFromFace(0)
		ch := face.Children()
		grand := ch[1].Children()

		got := cellunion.FromDifference(cellunion.New(face), cellunion.New(grand[0]))
		Expect(got).To(Equal(cellunion.Union{ch[0], grand[1], grand[2], grand[3], ch[2], ch[3]}))
	})

	It("should satisfy the union/intersection laws", func() {
		for n := 0; n < 5; n++ {
			x, y, z := randomUnion(rnd, 30), randomUnion(rnd, 30), randomUnion(rnd, 30)

			Expect(cellunion.FromUnion(x, x)).To(Equal(x), "union is idempotent")
			Expect(cellunion.FromIntersection(x, x)).To(Equal(x), "intersection is idempotent")

			Expect(cellunion.FromUnion(x, y)).To(Equal(cellunion.FromUnion(y, x)), "union commutes")
			Expect(cellunion.FromIntersection(x, y)).To(Equal(cellunion.FromIntersection(y, x)), "intersection commutes")

			Expect(cellunion.FromUnion(cellunion.FromUnion(x, y), z)).
				To(Equal(cellunion.FromUnion(x, cellunion.FromUnion(y, z))), "union associates")
			Expect(cellunion.FromIntersection(cellunion.FromIntersection(x, y), z)).
				To(Equal(cellunion.FromIntersection(x, cellunion.FromIntersection(y, z))), "intersection associates")

			Expect(cellunion.FromUnion(x, cellunion.FromIntersection(x, y))).To(Equal(x), "absorption")

			union := cellunion.FromUnion(x, y)
			Expect(union.ContainsUnion(x)).To(BeTrue())
			Expect(union.ContainsUnion(y)).To(BeTrue())

			sect := cellunion.FromIntersection(x, y)
			Expect(x.ContainsUnion(sect)).To(BeTrue())
			Expect(y.ContainsUnion(sect)).To(BeTrue())
			Expect(len(sect) != 0).To(Equal(x.IntersectsUnion(y)), "intersection coherence")
		}
	})

	It("should satisfy the difference laws", func() {
		for n := 0; n < 5; n++ {
			x, y := randomUnion(rnd, 30), randomUnion(rnd, 30)
			diff := cellunion.FromDifference(x, y)

			Expect(cellunion.FromIntersection(diff, y)).To(BeEmpty())
			Expect(cellunion.FromUnion(diff, cellunion.FromIntersection(x, y))).To(Equal(x))
		}
	})

	It("should satisfy De Morgan", func() {
		sphere := wholeSphere()
		for n := 0; n < 5; n++ {
			x, y := randomUnion(rnd, 20), randomUnion(rnd, 20)

			lhs := cellunion.FromDifference(sphere, cellunion.FromUnion(x, y))
			rhs := cellunion.FromIntersection(
				cellunion.FromDifference(sphere, x),
				cellunion.FromDifference(sphere, y))
			Expect(lhs).To(Equal(rhs))
		}
	})
})

var _ = Describe("expansion", func() {
	It("should expand a cell at its own level", func() {
		id := s2.CellIDFromFace(2).ChildBeginAtLevel(5)
		subject := cellunion.New(id)
		subject.ExpandAtLevel(5)

		Expect(subject).To(Equal(cellunion.New(append(id.AllNeighbors(5), id)...)))
	})

	It("should expand coarse cells with a finer rim", func() {
		id := s2.CellIDFromFace(2).ChildBeginAtLevel(2)
		subject := cellunion.New(id)
		subject.ExpandAtLevel(3)

		Expect(subject).To(Equal(cellunion.New(append(id.AllNeighbors(3), id)...)))
		Expect(subject.ContainsCellID(id)).To(BeTrue())
	})

	It("should expand fine cells via their ancestor", func() {
		id := s2.CellIDFromFace(2).ChildBeginAtLevel(8)
		parent := id.Parent(5)
		subject := cellunion.New(id)
		subject.ExpandAtLevel(5)

		Expect(subject).To(Equal(cellunion.New(append(parent.AllNeighbors(5), parent)...)))
	})

	It("should derive the expansion level from a radius", func() {
		id := s2.CellIDFromFace(2).ChildBeginAtLevel(5)
		radius := s1.Angle(s2.MinWidthMetric.Value(10))

		// min(radius level 10, 5+3) = 8
		subject := cellunion.New(id)
		subject.ExpandByRadius(radius, 3)

		expected := cellunion.New(id)
		expected.ExpandAtLevel(8)
		Expect(subject).To(Equal(expected))
		Expect(subject.ContainsCellID(id)).To(BeTrue())
	})

	It("should not cap the level when the radius is small", func() {
		id := s2.CellIDFromFace(2).ChildBeginAtLevel(5)
		radius := s1.Angle(s2.MinWidthMetric.Value(6))

		subject := cellunion.New(id)
		subject.ExpandByRadius(radius, 3)

		expected := cellunion.New(id)
		expected.ExpandAtLevel(6)
		Expect(subject).To(Equal(expected))
	})
})

var _ = Describe("range construction", func() {
	It("should cover a full face", func() {
		face := s2.CellIDFromFace(0)
		Expect(cellunion.FromMinMax(face.RangeMin(), face.RangeMax())).To(Equal(cellunion.Union{face}))
	})

	It("should cover partial ranges", func() {
		face := s2.CellIDFromFace(3)
		lo, hi := face.RangeMin(), face.Children()[1].RangeMax()

		subject := cellunion.FromMinMax(lo, hi)
		Expect(subject).To(Equal(cellunion.New(face.Children()[0], face.Children()[1])))

		Expect(subject.ContainsCellID(lo)).To(BeTrue())
		Expect(subject.ContainsCellID(hi)).To(BeTrue())
		Expect(subject.ContainsCellID(hi.Next())).To(BeFalse())
	})

	It("should cover single leaves", func() {
		leaf := s2.CellIDFromFace(1).ChildBeginAtLevel(maxLevel).Advance(12345)
		Expect(cellunion.FromMinMax(leaf, leaf)).To(Equal(cellunion.Union{leaf}))
	})

	It("should count covered leaves", func() {
		lo := s2.CellIDFromFace(2).ChildBeginAtLevel(maxLevel).Advance(7)
		hi := lo.Advance(999)

		subject := cellunion.FromMinMax(lo, hi)
		expectNormalized(subject)
		Expect(subject.LeafCellsCovered()).To(Equal(uint64(1000)))
	})

	It("should build from half-open ranges", func() {
		lo := s2.CellIDFromFace(2).ChildBeginAtLevel(maxLevel).Advance(7)

		Expect(cellunion.FromBeginEnd(lo, lo)).To(BeEmpty())
		Expect(cellunion.FromBeginEnd(lo, lo.Advance(1000))).To(Equal(cellunion.FromMinMax(lo, lo.Advance(999))))
	})
})
