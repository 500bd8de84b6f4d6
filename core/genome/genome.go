// core/genome/genome.go
package genome

import (
	"fmt"

	"github.com/nowling-lab/genomic-element-ml/core/fasta"
)

// Genome maps chromosome name to its full sequence. It is immutable after
// load; a chromosome's length is the length of its sequence string.
type Genome map[string]string

// FromRecords builds a genome from parsed FASTA records.
func FromRecords(recs *fasta.Records) Genome {
	g := make(Genome, recs.Len())
	for i := 0; i < recs.Len(); i++ {
		rec := recs.At(i)
		g[rec.ID] = rec.Seq
	}
	return g
}

// Load reads a genome FASTA file (gzip and "-" supported).
func Load(path string) (Genome, error) {
	recs, err := fasta.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromRecords(recs), nil
}

// Length returns a chromosome's length in bases.
func (g Genome) Length(chrom string) (int, bool) {
	seq, ok := g[chrom]
	return len(seq), ok
}

// Lengths returns the chromosome length table.
func (g Genome) Lengths() map[string]int {
	out := make(map[string]int, len(g))
	for chrom, seq := range g {
		out[chrom] = len(seq)
	}
	return out
}

// BoundsError reports a window that falls outside its chromosome. Windows
// are never clipped: a clipped window would silently change the window
// width and every k-mer count computed from it.
type BoundsError struct {
	Chrom  string
	Start  int
	End    int
	Length int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("window %s:%d-%d outside chromosome bounds [1, %d]",
		e.Chrom, e.Start, e.End, e.Length)
}

// Subsequence returns the substring covered by the 1-indexed inclusive
// interval [start, end] on chrom. It fails with a *BoundsError when the
// interval leaves the chromosome, and a plain error for an unknown
// chromosome.
func (g Genome) Subsequence(chrom string, start, end int) (string, error) {
	seq, ok := g[chrom]
	if !ok {
		return "", fmt.Errorf("unknown chromosome %q", chrom)
	}
	if start < 1 || end > len(seq) || end < start {
		return "", &BoundsError{Chrom: chrom, Start: start, End: end, Length: len(seq)}
	}
	return seq[start-1 : end], nil
}
