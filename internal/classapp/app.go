// internal/classapp/app.go
package classapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/nowling-lab/genomic-element-ml/core/ensemble"
	"github.com/nowling-lab/genomic-element-ml/core/fasta"
	"github.com/nowling-lab/genomic-element-ml/core/kmer"
	"github.com/nowling-lab/genomic-element-ml/core/metrics"
	"github.com/nowling-lab/genomic-element-ml/core/windows"
	"github.com/nowling-lab/genomic-element-ml/internal/classcli"
	"github.com/nowling-lab/genomic-element-ml/internal/logutil"
	"github.com/nowling-lab/genomic-element-ml/internal/modelstore"
	"github.com/nowling-lab/genomic-element-ml/internal/version"
	"github.com/nowling-lab/genomic-element-ml/internal/writers"
)

// Run executes the classifier: train (or load) an ensemble on one
// experiment's sequences, score another experiment's, write per-window
// predictions, and report ROC-AUC. Exit codes: 0 ok, 2 bad usage or
// unparseable input, 3 processing/write failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := classcli.NewFlagSet("peakclass")
	fs.SetOutput(io.Discard)

	opts, err := classcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "peakclass version %s\n", version.Version)
		return 0
	}

	log := logutil.New(stderr, opts.Quiet)

	targetTreat, err := fasta.ReadFile(opts.TargetTreatment)
	if err != nil {
		log.Error().Err(err).Str("path", opts.TargetTreatment).Msg("read target treatment")
		return 2
	}
	targetCtrl, err := fasta.ReadFile(opts.TargetControl)
	if err != nil {
		log.Error().Err(err).Str("path", opts.TargetControl).Msg("read target control")
		return 2
	}

	var (
		vec   *kmer.Vectorizer
		model *ensemble.Model
	)
	if opts.LoadModel != "" {
		meta, vocab, m, err := modelstore.Load(opts.LoadModel)
		if err != nil {
			log.Error().Err(err).Str("path", opts.LoadModel).Msg("load model")
			return 2
		}
		vec = kmer.FromVocabulary(meta.KmerSizes, vocab)
		model = m
		log.Info().
			Int("vocabulary", vec.VocabSize()).
			Int("learners", len(model.Learners)).
			Msg("model loaded")
	} else {
		vec, model, err = train(log, opts)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if opts.SaveModel != "" {
			meta := modelstore.Meta{
				KmerSizes:    vec.Sizes(),
				Lambda:       opts.Lambda,
				EnsembleSize: opts.EnsembleSize,
				Epochs:       opts.Epochs,
				LearningRate: opts.LearningRate,
				Seed:         opts.Seed,
			}
			if err := modelstore.Save(opts.SaveModel, meta, vec.Vocabulary(), model); err != nil {
				log.Error().Err(err).Str("path", opts.SaveModel).Msg("save model")
				return 3
			}
			log.Info().Str("path", opts.SaveModel).Msg("model saved")
		}
	}

	// Target rows keep input order: all treatment windows, then all controls.
	targetSeqs := append(targetTreat.Seqs(), targetCtrl.Seqs()...)
	X := vec.Transform(targetSeqs)
	probs := model.Predict(X)

	ids := append(targetTreat.IDs(), targetCtrl.IDs()...)
	labels := make([]int, len(ids))
	preds := make([]writers.Prediction, len(ids))
	for i, id := range ids {
		label := 0
		if i < targetTreat.Len() {
			label = 1
		}
		w, err := windows.ParseID(id)
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("target sequence has no window identifier")
			return 2
		}
		labels[i] = label
		preds[i] = writers.Prediction{Window: w, ID: id, Label: label, Prob: probs[i]}
	}

	auc, err := metrics.ROCAUC(labels, probs)
	if err != nil {
		log.Error().Err(err).Msg("compute ROC-AUC")
		return 2
	}

	if opts.Out == "-" {
		err = writers.WritePredictions(outw, preds)
	} else {
		err = writers.WritePredictionsFile(opts.Out, preds)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		log.Error().Err(err).Str("path", opts.Out).Msg("write predictions")
		return 3
	}

	_, _ = fmt.Fprintf(outw, "ROC-AUC: %.2f%%\n", auc*100)
	return 0
}

// train fits the vectorizer and ensemble on the training experiment.
func train(log zerolog.Logger, opts classcli.Options) (*kmer.Vectorizer, *ensemble.Model, error) {
	trainTreat, err := fasta.ReadFile(opts.TrainTreatment)
	if err != nil {
		return nil, nil, fmt.Errorf("read training treatment: %w", err)
	}
	trainCtrl, err := fasta.ReadFile(opts.TrainControl)
	if err != nil {
		return nil, nil, fmt.Errorf("read training control: %w", err)
	}

	seqs := append(trainTreat.Seqs(), trainCtrl.Seqs()...)
	y := make([]float64, len(seqs))
	for i := 0; i < trainTreat.Len(); i++ {
		y[i] = 1
	}

	vec := kmer.NewVectorizer()
	vec.Fit(seqs)
	X := vec.Transform(seqs)

	nnz := 0
	for _, row := range X.Rows {
		nnz += row.NNZ()
	}
	log.Info().
		Int("sequences", len(seqs)).
		Int("vocabulary", vec.VocabSize()).
		Int("nonzeros", nnz).
		Msg("training matrix built")

	model, err := ensemble.Train(X, y, ensemble.Config{
		TrainConfig: ensemble.TrainConfig{
			Lambda:       opts.Lambda,
			Epochs:       opts.Epochs,
			LearningRate: opts.LearningRate,
		},
		Size:    opts.EnsembleSize,
		Workers: opts.Threads,
		Seed:    opts.Seed,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("train ensemble: %w", err)
	}

	losses := make([]float64, len(model.Learners))
	for i, l := range model.Learners {
		losses[i] = l.LogLoss(X, y)
	}
	log.Info().
		Int("learners", len(model.Learners)).
		Float64("logloss_mean", stat.Mean(losses, nil)).
		Float64("logloss_stddev", stat.StdDev(losses, nil)).
		Msg("ensemble trained")

	return vec, model, nil
}
