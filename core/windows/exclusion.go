// core/windows/exclusion.go
package windows

import "sort"

// ExclusionIndex records occupied intervals per chromosome. The sampler
// seeds it with every peak window up front and inserts each accepted
// control, so acceptance queries see all previously claimed ground.
//
// Intervals are kept sorted and disjoint (inserts merge), which makes both
// Insert and Overlaps O(log n) in the number of stored intervals.
type ExclusionIndex struct {
	byChrom map[string]*intervalSet
}

// NewExclusionIndex returns an empty index.
func NewExclusionIndex() *ExclusionIndex {
	return &ExclusionIndex{byChrom: make(map[string]*intervalSet)}
}

// Insert marks w's interval as occupied on its chromosome.
func (x *ExclusionIndex) Insert(w Window) {
	s := x.byChrom[w.Chrom]
	if s == nil {
		s = &intervalSet{}
		x.byChrom[w.Chrom] = s
	}
	s.insert(w.Start, w.End)
}

// Overlaps reports whether w intersects any occupied interval on its
// chromosome.
func (x *ExclusionIndex) Overlaps(w Window) bool {
	s := x.byChrom[w.Chrom]
	return s != nil && s.overlaps(w.Start, w.End)
}

// intervalSet holds disjoint closed intervals sorted by start.
type intervalSet struct {
	iv [][2]int
}

func (s *intervalSet) overlaps(start, end int) bool {
	// First interval whose end reaches start; disjointness keeps ends sorted.
	i := sort.Search(len(s.iv), func(i int) bool { return s.iv[i][1] >= start })
	return i < len(s.iv) && s.iv[i][0] <= end
}

func (s *intervalSet) insert(start, end int) {
	lo := sort.Search(len(s.iv), func(i int) bool { return s.iv[i][1] >= start })
	hi := sort.Search(len(s.iv), func(i int) bool { return s.iv[i][0] > end })
	if lo == hi {
		s.iv = append(s.iv, [2]int{})
		copy(s.iv[lo+1:], s.iv[lo:])
		s.iv[lo] = [2]int{start, end}
		return
	}
	// Merge [lo, hi) with the new interval.
	if s.iv[lo][0] < start {
		start = s.iv[lo][0]
	}
	if s.iv[hi-1][1] > end {
		end = s.iv[hi-1][1]
	}
	s.iv[lo] = [2]int{start, end}
	s.iv = append(s.iv[:lo+1], s.iv[hi:]...)
}
