// core/kmer/vectorizer.go
package kmer

import "sort"

// DefaultSizes are the k-mer lengths counted by default.
var DefaultSizes = []int{6, 7, 8}

// Vectorizer turns sequences into sparse k-mer count vectors. The
// vocabulary is established once by Fit and never grows afterwards:
// Transform silently drops k-mers it has not seen, including on sequences
// from a different experiment.
type Vectorizer struct {
	sizes []int
	vocab map[string]int
	terms []string
}

// NewVectorizer returns an unfitted vectorizer counting the given k-mer
// lengths (DefaultSizes when none are supplied).
func NewVectorizer(sizes ...int) *Vectorizer {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	return &Vectorizer{sizes: sizes}
}

// FromVocabulary rebuilds a fitted vectorizer from a stored term list. The
// terms must be in column order.
func FromVocabulary(sizes []int, terms []string) *Vectorizer {
	v := NewVectorizer(sizes...)
	v.terms = terms
	v.vocab = make(map[string]int, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
	}
	return v
}

// Sizes returns the k-mer lengths counted.
func (v *Vectorizer) Sizes() []int { return v.sizes }

// Fit enumerates every distinct overlapping k-mer (per configured length,
// sliding one base at a time, case-sensitive, no padding) across seqs and
// assigns column indices in sorted lexicographic order, so the mapping is
// reproducible across runs.
func (v *Vectorizer) Fit(seqs []string) {
	seen := make(map[string]struct{})
	for _, seq := range seqs {
		for _, k := range v.sizes {
			for i := 0; i+k <= len(seq); i++ {
				seen[seq[i:i+k]] = struct{}{}
			}
		}
	}
	v.terms = make([]string, 0, len(seen))
	for t := range seen {
		v.terms = append(v.terms, t)
	}
	sort.Strings(v.terms)
	v.vocab = make(map[string]int, len(v.terms))
	for i, t := range v.terms {
		v.vocab[t] = i
	}
}

// VocabSize returns the number of fitted columns.
func (v *Vectorizer) VocabSize() int { return len(v.terms) }

// Vocabulary returns the fitted terms in column order.
func (v *Vectorizer) Vocabulary() []string { return v.terms }

// Transform produces one sparse count row per sequence, in input order.
func (v *Vectorizer) Transform(seqs []string) *Matrix {
	m := &Matrix{Cols: len(v.terms), Rows: make([]Row, len(seqs))}
	for r, seq := range seqs {
		counts := make(map[int]float64)
		for _, k := range v.sizes {
			for i := 0; i+k <= len(seq); i++ {
				if col, ok := v.vocab[seq[i:i+k]]; ok {
					counts[col]++
				}
			}
		}
		m.Rows[r] = newRow(counts)
	}
	return m
}

// Matrix is a sparse row-major count matrix.
type Matrix struct {
	Cols int
	Rows []Row
}

// NumRows returns the number of rows.
func (m *Matrix) NumRows() int { return len(m.Rows) }

// Row holds one sequence's nonzero columns, index-sorted.
type Row struct {
	Index []int
	Count []float64
}

func newRow(counts map[int]float64) Row {
	idx := make([]int, 0, len(counts))
	for col := range counts {
		idx = append(idx, col)
	}
	sort.Ints(idx)
	cnt := make([]float64, len(idx))
	for i, col := range idx {
		cnt[i] = counts[col]
	}
	return Row{Index: idx, Count: cnt}
}

// NNZ returns the number of nonzero entries.
func (r Row) NNZ() int { return len(r.Index) }
