package windows

import (
	"errors"
	"testing"
)

func TestCheckWidth(t *testing.T) {
	for _, w := range []int{1, 3, 501} {
		if err := CheckWidth(w); err != nil {
			t.Fatalf("width %d rejected: %v", w, err)
		}
	}
	for _, w := range []int{0, -3, 2, 500} {
		if err := CheckWidth(w); !errors.Is(err, ErrEvenWidth) {
			t.Fatalf("width %d: expected ErrEvenWidth, got %v", w, err)
		}
	}
}

func TestPeakWindowRecenters(t *testing.T) {
	p := Peak{Chrom: "chr1", Start: 100, End: 200, Summit: 50}
	w := p.Window(501)
	if w.Start != -100 || w.End != 400 {
		t.Fatalf("recentered window = [%d, %d], want [-100, 400]", w.Start, w.End)
	}
	if w.Width() != 501 {
		t.Fatalf("width = %d", w.Width())
	}
}

func TestIDRoundTrip(t *testing.T) {
	for _, w := range []Window{
		{Chrom: "chr1", Start: 150, End: 650},
		{Chrom: "scaffold:12", Start: 1, End: 3},
	} {
		got, err := ParseID(w.ID())
		if err != nil {
			t.Fatalf("parse %q: %v", w.ID(), err)
		}
		if got != w {
			t.Fatalf("round trip %q: got %+v", w.ID(), got)
		}
	}
	for _, bad := range []string{"", "chr1", "chr1:", "chr1:a-b", "chr1:5", ":5-10"} {
		if _, err := ParseID(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestExclusionIndexOverlapAndMerge(t *testing.T) {
	x := NewExclusionIndex()
	x.Insert(Window{"chr1", 10, 20})
	x.Insert(Window{"chr1", 40, 50})
	x.Insert(Window{"chr2", 10, 20})

	cases := []struct {
		w    Window
		want bool
	}{
		{Window{"chr1", 1, 9}, false},
		{Window{"chr1", 1, 10}, true},
		{Window{"chr1", 20, 25}, true},
		{Window{"chr1", 21, 39}, false},
		{Window{"chr1", 15, 45}, true},
		{Window{"chr3", 10, 20}, false},
		{Window{"chr2", 19, 30}, true},
	}
	for _, c := range cases {
		if got := x.Overlaps(c.w); got != c.want {
			t.Fatalf("Overlaps(%+v) = %v, want %v", c.w, got, c.want)
		}
	}

	// Bridging insert merges neighbours; queries stay consistent.
	x.Insert(Window{"chr1", 18, 42})
	if !x.Overlaps(Window{"chr1", 30, 30}) {
		t.Fatalf("merged interval lost coverage")
	}
	if x.Overlaps(Window{"chr1", 51, 60}) {
		t.Fatalf("false positive after merge")
	}
}

func TestIntervalSetStaysSorted(t *testing.T) {
	s := &intervalSet{}
	for _, iv := range [][2]int{{50, 60}, {10, 20}, {30, 40}, {5, 8}, {25, 55}} {
		s.insert(iv[0], iv[1])
	}
	for i := 1; i < len(s.iv); i++ {
		if s.iv[i-1][1] >= s.iv[i][0] {
			t.Fatalf("intervals not disjoint/sorted: %v", s.iv)
		}
	}
}
