package metrics

import (
	"errors"
	"math"
	"testing"
)

func TestPerfectPredictionsScoreOne(t *testing.T) {
	labels := []int{1, 0, 1, 0, 0, 1}
	probs := []float64{1, 0, 1, 0, 0, 1}
	auc, err := ROCAUC(labels, probs)
	if err != nil {
		t.Fatalf("auc: %v", err)
	}
	if auc != 1.0 {
		t.Fatalf("auc = %v, want 1.0", auc)
	}
}

func TestConstantPredictionsScoreHalf(t *testing.T) {
	labels := []int{1, 0, 1, 0, 0}
	probs := []float64{0.7, 0.7, 0.7, 0.7, 0.7}
	auc, err := ROCAUC(labels, probs)
	if err != nil {
		t.Fatalf("auc: %v", err)
	}
	if auc != 0.5 {
		t.Fatalf("auc = %v, want 0.5", auc)
	}
}

func TestTiedRanksAreAveraged(t *testing.T) {
	// Sorted probs: 0.1(r1) 0.8(r2) 0.9,0.9(r3.5 each).
	// sumRanks(pos) = 3.5 + 2 = 5.5; U = 5.5 - 3 = 2.5; AUC = 2.5/4.
	labels := []int{1, 0, 1, 0}
	probs := []float64{0.9, 0.9, 0.8, 0.1}
	auc, err := ROCAUC(labels, probs)
	if err != nil {
		t.Fatalf("auc: %v", err)
	}
	if math.Abs(auc-0.625) > 1e-12 {
		t.Fatalf("auc = %v, want 0.625", auc)
	}
}

func TestReversedPredictionsScoreZero(t *testing.T) {
	labels := []int{1, 1, 0, 0}
	probs := []float64{0.1, 0.2, 0.8, 0.9}
	auc, err := ROCAUC(labels, probs)
	if err != nil {
		t.Fatalf("auc: %v", err)
	}
	if auc != 0.0 {
		t.Fatalf("auc = %v, want 0.0", auc)
	}
}

func TestSingleClassFails(t *testing.T) {
	if _, err := ROCAUC([]int{1, 1}, []float64{0.5, 0.6}); !errors.Is(err, ErrSingleClass) {
		t.Fatalf("expected ErrSingleClass, got %v", err)
	}
	if _, err := ROCAUC([]int{1, 0}, []float64{0.5}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}
