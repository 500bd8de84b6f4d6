// core/fasta/read.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Read parses FASTA from r into an ordered record collection. A record
// begins at a '>' header line; the ID is the first whitespace-delimited
// token after '>', and subsequent lines are concatenated (line breaks
// trimmed) into the sequence.
func Read(r io.Reader) (*Records, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	recs := NewRecords()
	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)
	flush := func() {
		if id == "" {
			return
		}
		recs.Add(id, string(seq))
		seq = seq[:0]
	}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

// ReadFile parses a FASTA file; gzip and "-" for stdin are handled.
func ReadFile(path string) (*Records, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
