// internal/prepcli/options.go
package prepcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/nowling-lab/genomic-element-ml/core/windows"
	"github.com/nowling-lab/genomic-element-ml/internal/version"
)

// Options holds all CLI flags for the window preparer.
type Options struct {
	// Inputs
	PeaksFile  string
	GenomeFile string
	Chroms     []string // optional chromosome allowlist

	// Sampling parameters
	Width    int
	RetryCap int
	Seed     int64

	// Outputs
	TreatmentWindows string
	TreatmentSeqs    string
	ControlWindows   string
	ControlSeqs      string

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: prepare treatment and control windows from called peaks

Re-centers each peak on its summit at a fixed odd width, samples an equal
number of disjoint control windows from the same genome, and writes window
tables plus extracted sequences for both sets.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.PeaksFile, "peaks", "", "called-peak file (whitespace-delimited) [*]")
	fs.StringVar(&opt.GenomeFile, "genome", "", "genome FASTA file ('-' for stdin, .gz ok) [*]")
	var chroms stringSlice
	fs.Var(&chroms, "chroms", "chromosome allowlist (repeatable; default: all)")

	fs.IntVar(&opt.Width, "width", 0, "window width in bases (must be odd) [*]")
	fs.IntVar(&opt.RetryCap, "retry-cap", windows.DefaultRetryCap, "max placement attempts per control window [1000]")
	fs.Int64Var(&opt.Seed, "seed", 42, "random seed for control sampling [42]")

	fs.StringVar(&opt.TreatmentWindows, "treatment-windows", "", "output TSV for treatment windows [*]")
	fs.StringVar(&opt.TreatmentSeqs, "treatment-seqs", "", "output FASTA for treatment sequences [*]")
	fs.StringVar(&opt.ControlWindows, "control-windows", "", "output TSV for control windows [*]")
	fs.StringVar(&opt.ControlSeqs, "control-seqs", "", "output FASTA for control sequences [*]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Chroms = chroms

	// Validation. Width is checked before anything is opened or read.
	if err := windows.CheckWidth(opt.Width); err != nil {
		return opt, fmt.Errorf("--width: %w", err)
	}
	if opt.PeaksFile == "" {
		return opt, errors.New("--peaks is required")
	}
	if opt.GenomeFile == "" {
		return opt, errors.New("--genome is required")
	}
	if opt.RetryCap < 1 {
		return opt, errors.New("--retry-cap must be >= 1")
	}
	for _, p := range []struct{ flag, val string }{
		{"--treatment-windows", opt.TreatmentWindows},
		{"--treatment-seqs", opt.TreatmentSeqs},
		{"--control-windows", opt.ControlWindows},
		{"--control-seqs", opt.ControlSeqs},
	} {
		if p.val == "" {
			return opt, fmt.Errorf("%s is required", p.flag)
		}
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
