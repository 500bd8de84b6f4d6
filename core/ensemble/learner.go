// core/ensemble/learner.go
package ensemble

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/nowling-lab/genomic-element-ml/core/kmer"
)

// Learner is one trained logistic-regression parameter set. Immutable after
// training.
type Learner struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// TrainConfig holds the per-learner optimization parameters.
type TrainConfig struct {
	Lambda       float64 // L2 penalty weight
	Epochs       int     // full passes over the training set
	LearningRate float64 // initial step size eta0
}

// Training defaults when a value is unset.
const (
	DefaultEpochs       = 10
	DefaultLearningRate = 0.1
)

func (c TrainConfig) withDefaults() TrainConfig {
	if c.Epochs < 1 {
		c.Epochs = DefaultEpochs
	}
	if c.LearningRate <= 0 {
		c.LearningRate = DefaultLearningRate
	}
	return c
}

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

func (l Learner) score(row kmer.Row) float64 {
	s := l.Bias
	for i, col := range row.Index {
		s += l.Weights[col] * row.Count[i]
	}
	return s
}

// Prob returns the learner's probability of class 1 for a feature row.
func (l Learner) Prob(row kmer.Row) float64 { return sigmoid(l.score(row)) }

// LogLoss returns the mean log-loss of the learner over X, y.
func (l Learner) LogLoss(X *kmer.Matrix, y []float64) float64 {
	const eps = 1e-12
	total := 0.0
	for i, row := range X.Rows {
		p := l.Prob(row)
		if p < eps {
			p = eps
		} else if p > 1-eps {
			p = 1 - eps
		}
		total += -(y[i]*math.Log(p) + (1-y[i])*math.Log(1-p))
	}
	return total / float64(len(X.Rows))
}

// trainLearner fits one logistic model by stochastic gradient descent over
// per-epoch shuffles of the full training set, minimizing log-loss plus an
// L2 penalty: w <- w - eta_t*(grad + lambda*w). Weight initialization and
// shuffle order come from rng, which is the only thing distinguishing the
// ensemble's learners. The step size decays as eta0 / (1 + t/n).
func trainLearner(X *kmer.Matrix, y []float64, cfg TrainConfig, rng *rand.Rand) Learner {
	cfg = cfg.withDefaults()
	n := X.NumRows()
	l := Learner{Weights: make([]float64, X.Cols)}
	for j := range l.Weights {
		l.Weights[j] = rng.NormFloat64() * 0.01
	}
	l.Bias = rng.NormFloat64() * 0.01

	t := 0
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for _, i := range rng.Perm(n) {
			eta := cfg.LearningRate / (1 + float64(t)/float64(n))
			row := X.Rows[i]
			g := l.Prob(row) - y[i] // d logloss / d score
			if cfg.Lambda > 0 {
				// (1 - eta*lambda)*w - eta*g*x == w - eta*(g*x + lambda*w);
				// the bias carries no penalty.
				floats.Scale(1-eta*cfg.Lambda, l.Weights)
			}
			for k, col := range row.Index {
				l.Weights[col] -= eta * g * row.Count[k]
			}
			l.Bias -= eta * g
			t++
		}
	}
	return l
}
