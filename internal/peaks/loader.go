// internal/peaks/loader.go
package peaks

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nowling-lab/genomic-element-ml/core/windows"
)

// ParseError reports a peak file that satisfies neither schema.
type ParseError struct {
	Path     string
	Line     int
	Primary  string // why the 10-column schema failed
	Fallback string // why the 3-column schema failed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: peak file matches no schema (primary: %s; fallback: %s)",
		e.Path, e.Line, e.Primary, e.Fallback)
}

// Column layout of the primary schema. Extra columns are ignored.
const (
	colChrom  = 0
	colStart  = 1
	colEnd    = 2
	colSummit = 9
)

// parseResult is the tagged outcome of one schema pass: either the parsed
// peaks or the line and reason of the first failure. No panics, no
// exception-style control flow.
type parseResult struct {
	peaks  []windows.Peak
	ok     bool
	line   int
	reason string
}

func fail(line int, format string, a ...any) parseResult {
	return parseResult{line: line, reason: fmt.Sprintf(format, a...)}
}

// Load reads a whitespace-delimited peak file. The primary schema takes
// chromosome/start/end from columns 0-2 and the summit offset from column
// 9; only when that pass explicitly fails is the fallback schema tried,
// which reads columns 0-2 and defaults the summit offset to 0. Blank lines
// and '#' comments are skipped. If both passes fail, the error is a
// *ParseError naming both reasons.
func Load(path string) ([]windows.Peak, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var lines []string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	primary := parseLines(lines, true)
	if primary.ok {
		return primary.peaks, nil
	}
	fallback := parseLines(lines, false)
	if fallback.ok {
		return fallback.peaks, nil
	}
	return nil, &ParseError{
		Path:     path,
		Line:     primary.line,
		Primary:  primary.reason,
		Fallback: fmt.Sprintf("line %d: %s", fallback.line, fallback.reason),
	}
}

func parseLines(lines []string, withSummit bool) parseResult {
	var out []windows.Peak
	for ln, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		need := colEnd + 1
		if withSummit {
			need = colSummit + 1
		}
		if len(f) < need {
			return fail(ln+1, "want >=%d fields, got %d", need, len(f))
		}
		start, err := strconv.Atoi(f[colStart])
		if err != nil {
			return fail(ln+1, "bad start %q", f[colStart])
		}
		end, err := strconv.Atoi(f[colEnd])
		if err != nil {
			return fail(ln+1, "bad end %q", f[colEnd])
		}
		p := windows.Peak{Chrom: f[colChrom], Start: start, End: end}
		if withSummit {
			summit, err := strconv.Atoi(f[colSummit])
			if err != nil {
				return fail(ln+1, "bad summit %q", f[colSummit])
			}
			p.Summit = summit
		}
		out = append(out, p)
	}
	return parseResult{peaks: out, ok: true}
}
