// core/windows/sampler.go
package windows

import (
	"math/rand"
)

// Sampler draws control windows disjoint from peaks and from each other.
// The random source is supplied by the caller so runs are reproducible.
type Sampler struct {
	width    int
	retryCap int
	rng      *rand.Rand
}

// DefaultRetryCap bounds the draws attempted for a single control slot.
const DefaultRetryCap = 1000

// NewSampler validates width (odd) and retryCap (positive) and returns a
// sampler using rng.
func NewSampler(width, retryCap int, rng *rand.Rand) (*Sampler, error) {
	if err := CheckWidth(width); err != nil {
		return nil, err
	}
	if retryCap < 1 {
		retryCap = DefaultRetryCap
	}
	return &Sampler{width: width, retryCap: retryCap, rng: rng}, nil
}

// Sample produces up to one control window per peak window. For each slot a
// chromosome is drawn uniformly from the multiset of per-peak chromosomes,
// so chromosomes carrying more peaks proportionally receive more controls.
// Start positions are drawn uniformly over the in-bounds range; a draw is
// accepted when it overlaps nothing already in the exclusion index, and the
// accepted window immediately joins the index. A slot whose retry cap runs
// out is skipped; the skip count is returned alongside the controls. A
// chromosome shorter than the window width has an empty draw range and
// simply exhausts its slot.
func (s *Sampler) Sample(peaks []Window, chromLens map[string]int) (controls []Window, skipped int) {
	if len(peaks) == 0 {
		return nil, 0
	}
	idx := NewExclusionIndex()
	chroms := make([]string, len(peaks))
	for i, p := range peaks {
		idx.Insert(p)
		chroms[i] = p.Chrom
	}

	for range peaks {
		chrom := chroms[s.rng.Intn(len(chroms))]
		// Valid 1-indexed starts are [1, chromLen-width+1].
		maxStart := chromLens[chrom] - s.width + 1
		accepted := false
		if maxStart >= 1 {
			for a := 0; a < s.retryCap; a++ {
				start := 1 + s.rng.Intn(maxStart)
				cand := Window{Chrom: chrom, Start: start, End: start + s.width - 1}
				if idx.Overlaps(cand) {
					continue
				}
				idx.Insert(cand)
				controls = append(controls, cand)
				accepted = true
				break
			}
		}
		if !accepted {
			skipped++
		}
	}
	return controls, skipped
}
