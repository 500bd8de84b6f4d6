// core/windows/window.go
package windows

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEvenWidth is returned when a window width is not a positive odd number.
// Odd widths guarantee a well-defined center base.
var ErrEvenWidth = errors.New("window width must be a positive odd number")

// CheckWidth validates a configured window width.
func CheckWidth(width int) error {
	if width < 1 || width%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenWidth, width)
	}
	return nil
}

// Window is a genomic interval in 1-indexed inclusive coordinates.
type Window struct {
	Chrom string
	Start int
	End   int
}

// Width returns the number of bases covered by w.
func (w Window) Width() int { return w.End - w.Start + 1 }

// ID returns the canonical "{chrom}:{start}-{end}" identifier. Sequence
// records derive their names from it; it is never freely chosen.
func (w Window) ID() string {
	return fmt.Sprintf("%s:%d-%d", w.Chrom, w.Start, w.End)
}

// ParseID inverts Window.ID. The chromosome name may itself contain colons;
// the last colon separates it from the coordinate suffix.
func ParseID(id string) (Window, error) {
	colon := strings.LastIndex(id, ":")
	if colon <= 0 || colon == len(id)-1 {
		return Window{}, fmt.Errorf("bad window id %q", id)
	}
	suffix := id[colon+1:]
	dash := strings.IndexByte(suffix, '-')
	if dash <= 0 {
		return Window{}, fmt.Errorf("bad window id %q", id)
	}
	start, err := strconv.Atoi(suffix[:dash])
	if err != nil {
		return Window{}, fmt.Errorf("bad window id %q: %v", id, err)
	}
	end, err := strconv.Atoi(suffix[dash+1:])
	if err != nil {
		return Window{}, fmt.Errorf("bad window id %q: %v", id, err)
	}
	return Window{Chrom: id[:colon], Start: start, End: end}, nil
}

// centered builds the width-wide window around a center base. Width must
// already be validated odd.
func centered(chrom string, center, width int) Window {
	half := (width - 1) / 2
	return Window{Chrom: chrom, Start: center - half, End: center + half}
}

// Peak is a called peak interval plus the offset of its signal summit
// relative to the interval start.
type Peak struct {
	Chrom  string
	Start  int
	End    int
	Summit int
}

// Window re-centers the peak at its summit and widens it to width. The
// result may run off the chromosome; extraction is where that fails.
func (p Peak) Window(width int) Window {
	return centered(p.Chrom, p.Start+p.Summit, width)
}
