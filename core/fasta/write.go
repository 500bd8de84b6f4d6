// core/fasta/write.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write emits recs in insertion order, one header and one sequence line per
// record. Reading the output back yields an identical ID→sequence mapping in
// the same order.
func Write(w io.Writer, recs *Records) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < recs.Len(); i++ {
		rec := recs.At(i)
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", rec.ID, rec.Seq); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes recs to path; "-" writes to stdout.
func WriteFile(path string, recs *Records) error {
	if path == "-" {
		return Write(os.Stdout, recs)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, recs); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
