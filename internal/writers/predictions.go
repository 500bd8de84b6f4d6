// internal/writers/predictions.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nowling-lab/genomic-element-ml/core/windows"
)

// Prediction is one scored sequence: its source window, the window-derived
// identifier, the true label, and the ensemble probability.
type Prediction struct {
	Window windows.Window
	ID     string
	Label  int
	Prob   float64
}

// WritePredictions emits one 6-column tab-delimited line per prediction, no
// header: chromosome, start, end, id, label, probability. Rows are written
// in the order given; callers are expected to present treatment-derived
// rows first, then control-derived rows, each in original sequence order.
func WritePredictions(w io.Writer, preds []Prediction) error {
	bw := bufio.NewWriter(w)
	for _, p := range preds {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t%d\t%.6f\n",
			p.Window.Chrom, p.Window.Start, p.Window.End, p.ID, p.Label, p.Prob); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePredictionsFile writes preds to path; "-" writes to stdout.
func WritePredictionsFile(path string, preds []Prediction) error {
	if path == "-" {
		return WritePredictions(os.Stdout, preds)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePredictions(fh, preds); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
