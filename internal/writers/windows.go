// internal/writers/windows.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nowling-lab/genomic-element-ml/core/windows"
)

// WriteWindows emits one 3-column tab-delimited line per window, no header:
// chromosome, start, end.
func WriteWindows(w io.Writer, ws []windows.Window) error {
	bw := bufio.NewWriter(w)
	for _, win := range ws {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\n", win.Chrom, win.Start, win.End); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteWindowsFile writes ws to path; "-" writes to stdout.
func WriteWindowsFile(path string, ws []windows.Window) error {
	if path == "-" {
		return WriteWindows(os.Stdout, ws)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWindows(fh, ws); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
