// core/ensemble/ensemble.go
package ensemble

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/nowling-lab/genomic-element-ml/core/kmer"
)

// ErrInsufficientData is returned when training is attempted on an empty
// matrix or on labels containing fewer than two distinct classes.
var ErrInsufficientData = errors.New("training requires examples of at least two label classes")

// Config controls ensemble training.
type Config struct {
	TrainConfig
	Size    int   // number of learners (M)
	Workers int   // concurrent trainers (0 = all CPUs)
	Seed    int64 // base seed; per-learner RNGs derive from it
}

// Model is an ordered collection of independently trained learners.
// Immutable after training; prediction mutates nothing.
type Model struct {
	Learners []Learner `json:"learners"`
}

// Train fits cfg.Size learners on the identical full matrix X and labels y.
// There is no bootstrap resampling: every learner sees the same rows, and
// only random initialization and shuffle order differ, which reduces
// optimizer-induced variance without giving up training data. Learners are
// trained on up to cfg.Workers goroutines; per-learner seeds are drawn up
// front so the result is independent of scheduling.
func Train(X *kmer.Matrix, y []float64, cfg Config) (*Model, error) {
	if len(y) != X.NumRows() {
		return nil, fmt.Errorf("labels (%d) do not match rows (%d)", len(y), X.NumRows())
	}
	if X.NumRows() == 0 {
		return nil, ErrInsufficientData
	}
	var hasPos, hasNeg bool
	for _, v := range y {
		if v > 0.5 {
			hasPos = true
		} else {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		return nil, ErrInsufficientData
	}

	size := cfg.Size
	if size < 1 {
		size = 1
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > size {
		workers = size
	}

	base := rand.New(rand.NewSource(cfg.Seed))
	seeds := make([]int64, size)
	for i := range seeds {
		seeds[i] = base.Int63()
	}

	learners := make([]Learner, size)
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				learners[i] = trainLearner(X, y, cfg.TrainConfig, rand.New(rand.NewSource(seeds[i])))
			}
		}()
	}
	for i := 0; i < size; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &Model{Learners: learners}, nil
}

// Predict returns, for each row of X, the arithmetic mean of the learners'
// class-1 probabilities.
func (m *Model) Predict(X *kmer.Matrix) []float64 {
	probs := make([]float64, X.NumRows())
	for _, l := range m.Learners {
		for i, row := range X.Rows {
			probs[i] += l.Prob(row)
		}
	}
	floats.Scale(1/float64(len(m.Learners)), probs)
	return probs
}
