package kmer

import (
	"reflect"
	"testing"
)

func TestFitSingleKmer(t *testing.T) {
	v := NewVectorizer(6)
	v.Fit([]string{"AAAAAA"})
	if !reflect.DeepEqual(v.Vocabulary(), []string{"AAAAAA"}) {
		t.Fatalf("vocabulary = %v", v.Vocabulary())
	}

	m := v.Transform([]string{"AAAAAA"})
	if m.Cols != 1 || m.NumRows() != 1 {
		t.Fatalf("matrix shape %dx%d", m.NumRows(), m.Cols)
	}
	row := m.Rows[0]
	if row.NNZ() != 1 || row.Index[0] != 0 || row.Count[0] != 1 {
		t.Fatalf("row = %+v", row)
	}

	// Unseen k-mers never grow the vocabulary.
	zero := v.Transform([]string{"CCCCCC"})
	if zero.Cols != 1 || zero.Rows[0].NNZ() != 0 {
		t.Fatalf("expected all-zero row, got %+v", zero.Rows[0])
	}
	if v.VocabSize() != 1 {
		t.Fatalf("vocabulary grew to %d", v.VocabSize())
	}
}

func TestDefaultSizesSlideAllLengths(t *testing.T) {
	v := NewVectorizer()
	seq := "ACGTACGT" // length 8: three 6-mers, two 7-mers, one 8-mer
	v.Fit([]string{seq})
	if v.VocabSize() != 6 {
		t.Fatalf("vocab size = %d, want 6: %v", v.VocabSize(), v.Vocabulary())
	}

	m := v.Transform([]string{seq})
	total := 0.0
	for _, c := range m.Rows[0].Count {
		total += c
	}
	if total != 6 {
		t.Fatalf("total count = %v, want 6", total)
	}
}

func TestVocabularySortedAndStable(t *testing.T) {
	v := NewVectorizer(6)
	v.Fit([]string{"TTTTTTGGGGGGAAAAAA"})
	terms := v.Vocabulary()
	for i := 1; i < len(terms); i++ {
		if terms[i-1] >= terms[i] {
			t.Fatalf("vocabulary not sorted: %v", terms)
		}
	}

	// Same distinct k-mer set fitted in a different presentation order must
	// map to identical columns.
	w := NewVectorizer(6)
	w.Fit([]string{"GGGGGG", "TTTTTT", "AAAAAA", "TTTTTT"})
	u := NewVectorizer(6)
	u.Fit([]string{"AAAAAA", "GGGGGG", "TTTTTT"})
	if !reflect.DeepEqual(w.Vocabulary(), u.Vocabulary()) {
		t.Fatalf("column assignment differs: %v vs %v", w.Vocabulary(), u.Vocabulary())
	}
}

func TestTransformPreservesRowOrder(t *testing.T) {
	v := NewVectorizer(6)
	v.Fit([]string{"AAAAAA", "CCCCCC"})
	m := v.Transform([]string{"CCCCCC", "AAAAAA", "CCCCCC"})
	if m.NumRows() != 3 {
		t.Fatalf("rows = %d", m.NumRows())
	}
	aCol := v.vocab["AAAAAA"]
	cCol := v.vocab["CCCCCC"]
	if m.Rows[0].Index[0] != cCol || m.Rows[1].Index[0] != aCol || m.Rows[2].Index[0] != cCol {
		t.Fatalf("row order not preserved: %+v", m.Rows)
	}
}

func TestRebuildFromVocabulary(t *testing.T) {
	v := NewVectorizer(6, 7)
	v.Fit([]string{"ACGTACGTT"})
	w := FromVocabulary(v.Sizes(), v.Vocabulary())

	seqs := []string{"ACGTACG", "TTTTTTT"}
	a, b := v.Transform(seqs), w.Transform(seqs)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("rebuilt vectorizer disagrees: %+v vs %+v", a, b)
	}
}
