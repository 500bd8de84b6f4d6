// internal/prepapp/app.go
package prepapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/nowling-lab/genomic-element-ml/core/fasta"
	"github.com/nowling-lab/genomic-element-ml/core/genome"
	"github.com/nowling-lab/genomic-element-ml/core/windows"
	"github.com/nowling-lab/genomic-element-ml/internal/logutil"
	"github.com/nowling-lab/genomic-element-ml/internal/peaks"
	"github.com/nowling-lab/genomic-element-ml/internal/prepcli"
	"github.com/nowling-lab/genomic-element-ml/internal/version"
	"github.com/nowling-lab/genomic-element-ml/internal/writers"
)

// Run executes the window preparer: peaks + genome in, four files out
// (treatment/control windows and sequences). Exit codes: 0 ok, 2 bad
// usage or unparseable input, 3 processing/write failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := prepcli.NewFlagSet("peakprep")
	fs.SetOutput(io.Discard)

	opts, err := prepcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "peakprep version %s\n", version.Version)
		return 0
	}

	log := logutil.New(stderr, opts.Quiet)

	peakList, err := peaks.Load(opts.PeaksFile)
	if err != nil {
		log.Error().Err(err).Str("path", opts.PeaksFile).Msg("load peaks")
		return 2
	}
	g, err := genome.Load(opts.GenomeFile)
	if err != nil {
		log.Error().Err(err).Str("path", opts.GenomeFile).Msg("load genome")
		return 2
	}

	if len(opts.Chroms) > 0 {
		allow := make(map[string]bool, len(opts.Chroms))
		for _, c := range opts.Chroms {
			allow[c] = true
		}
		kept := peakList[:0]
		for _, p := range peakList {
			if allow[p.Chrom] {
				kept = append(kept, p)
			}
		}
		peakList = kept
		for chrom := range g {
			if !allow[chrom] {
				delete(g, chrom)
			}
		}
	}
	log.Info().
		Int("peaks", len(peakList)).
		Int("chromosomes", len(g)).
		Int("width", opts.Width).
		Msg("inputs loaded")

	// Treatment windows: each peak re-centered on its summit. A window that
	// leaves its chromosome is fatal; clipping would change its width.
	treatWins := make([]windows.Window, 0, len(peakList))
	treatSeqs := fasta.NewRecords()
	for _, p := range peakList {
		w := p.Window(opts.Width)
		seq, err := g.Subsequence(w.Chrom, w.Start, w.End)
		if err != nil {
			log.Error().Err(err).Msg("extract treatment window")
			return 3
		}
		treatWins = append(treatWins, w)
		treatSeqs.Add(w.ID(), seq)
	}

	sampler, err := windows.NewSampler(opts.Width, opts.RetryCap, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	controls, skipped := sampler.Sample(treatWins, g.Lengths())
	if skipped > 0 {
		log.Warn().
			Int("skipped", skipped).
			Int("retry_cap", opts.RetryCap).
			Msg("control slots exhausted their retry cap; yield reduced")
	}

	ctrlSeqs := fasta.NewRecords()
	for _, w := range controls {
		seq, err := g.Subsequence(w.Chrom, w.Start, w.End)
		if err != nil {
			log.Error().Err(err).Msg("extract control window")
			return 3
		}
		ctrlSeqs.Add(w.ID(), seq)
	}

	outputs := []struct {
		path  string
		write func() error
	}{
		{opts.TreatmentWindows, func() error { return writers.WriteWindowsFile(opts.TreatmentWindows, treatWins) }},
		{opts.TreatmentSeqs, func() error { return fasta.WriteFile(opts.TreatmentSeqs, treatSeqs) }},
		{opts.ControlWindows, func() error { return writers.WriteWindowsFile(opts.ControlWindows, controls) }},
		{opts.ControlSeqs, func() error { return fasta.WriteFile(opts.ControlSeqs, ctrlSeqs) }},
	}
	for _, out := range outputs {
		if err := out.write(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			log.Error().Err(err).Str("path", out.path).Msg("write output")
			return 3
		}
	}

	_, _ = fmt.Fprintf(outw, "treatment windows: %d\n", len(treatWins))
	_, _ = fmt.Fprintf(outw, "control windows: %d (%d skipped)\n", len(controls), skipped)
	return 0
}
