// internal/classcli/options.go
package classcli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/nowling-lab/genomic-element-ml/internal/cfg"
	"github.com/nowling-lab/genomic-element-ml/internal/version"
)

// Options holds all CLI flags for the classifier.
type Options struct {
	// Sequence inputs (FASTA written by peakprep)
	TrainTreatment  string
	TrainControl    string
	TargetTreatment string
	TargetControl   string

	// Training parameters
	Lambda       float64
	EnsembleSize int
	Epochs       int
	LearningRate float64
	Threads      int
	Seed         int64

	// Output / persistence
	Out        string
	ConfigFile string
	SaveModel  string
	LoadModel  string

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: cross-experiment sequence classifier

Trains an initialization-bagged ensemble of logistic models on k-mer counts
from one experiment's treatment/control sequences, scores a second
experiment's sequences, and reports ROC-AUC.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, merges in the optional YAML
// defaults file (explicit flags win), and returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.TrainTreatment, "train-treatment", "", "training treatment sequences (FASTA) [*]")
	fs.StringVar(&opt.TrainControl, "train-control", "", "training control sequences (FASTA) [*]")
	fs.StringVar(&opt.TargetTreatment, "target-treatment", "", "target treatment sequences (FASTA) [*]")
	fs.StringVar(&opt.TargetControl, "target-control", "", "target control sequences (FASTA) [*]")

	fs.Float64Var(&opt.Lambda, "lambda", 0.01, "L2 regularization weight [0.01]")
	fs.IntVar(&opt.EnsembleSize, "ensemble-size", 11, "number of learners in the ensemble [11]")
	fs.IntVar(&opt.Epochs, "epochs", 10, "SGD passes over the training set [10]")
	fs.Float64Var(&opt.LearningRate, "learning-rate", 0.1, "initial SGD step size [0.1]")
	fs.IntVar(&opt.Threads, "threads", 0, "concurrent learner trainers (0 = all CPUs) [0]")
	fs.Int64Var(&opt.Seed, "seed", 42, "base random seed for training [42]")

	fs.StringVar(&opt.Out, "out", "-", "prediction TSV output ('-' for stdout) [-]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML defaults file (flags override it)")
	fs.StringVar(&opt.SaveModel, "save-model", "", "persist vocabulary+ensemble to this BoltDB file")
	fs.StringVar(&opt.LoadModel, "load-model", "", "score with a stored model instead of training")

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

	if opt.ConfigFile != "" {
		if err := applyConfig(fs, &opt); err != nil {
			return opt, err
		}
	}

	// Validation
	if opt.TargetTreatment == "" || opt.TargetControl == "" {
		return opt, errors.New("--target-treatment and --target-control are required")
	}
	if opt.LoadModel == "" && (opt.TrainTreatment == "" || opt.TrainControl == "") {
		return opt, errors.New("--train-treatment and --train-control are required unless --load-model is given")
	}
	if opt.LoadModel != "" && opt.SaveModel != "" {
		return opt, errors.New("--load-model conflicts with --save-model")
	}
	if opt.Lambda < 0 {
		return opt, errors.New("--lambda must be >= 0")
	}
	if opt.EnsembleSize < 1 {
		return opt, errors.New("--ensemble-size must be >= 1")
	}
	if opt.Epochs < 1 {
		return opt, errors.New("--epochs must be >= 1")
	}
	if opt.LearningRate <= 0 {
		return opt, errors.New("--learning-rate must be > 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	return opt, nil
}

// applyConfig fills in defaults from the YAML file for any flag the user
// did not set on the command line.
func applyConfig(fs *flag.FlagSet, opt *Options) error {
	file, err := cfg.Load(opt.ConfigFile)
	if err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["lambda"] && file.Training.Lambda != 0 {
		opt.Lambda = file.Training.Lambda
	}
	if !set["ensemble-size"] && file.Training.EnsembleSize != 0 {
		opt.EnsembleSize = file.Training.EnsembleSize
	}
	if !set["epochs"] && file.Training.Epochs != 0 {
		opt.Epochs = file.Training.Epochs
	}
	if !set["learning-rate"] && file.Training.LearningRate != 0 {
		opt.LearningRate = file.Training.LearningRate
	}
	if !set["seed"] && file.Training.Seed != 0 {
		opt.Seed = file.Training.Seed
	}
	if !set["threads"] && file.Threads != 0 {
		opt.Threads = file.Threads
	}
	return nil
}
