// core/metrics/auc.go
package metrics

import (
	"errors"
	"fmt"
	"sort"
)

// ErrSingleClass is returned when ROC-AUC is requested for labels that
// contain only positives or only negatives.
var ErrSingleClass = errors.New("ROC-AUC requires both positive and negative labels")

// ROCAUC computes the area under the ROC curve with the rank-based
// (Mann-Whitney U) estimator: predicted probabilities are ranked with ties
// receiving the average of their rank range, and
//
//	AUC = (sumRanks(pos) - nPos*(nPos+1)/2) / (nPos*nNeg)
//
// which equals the probability that a random positive outranks a random
// negative.
func ROCAUC(labels []int, probs []float64) (float64, error) {
	if len(labels) != len(probs) {
		return 0, fmt.Errorf("labels (%d) do not match probabilities (%d)", len(labels), len(probs))
	}
	n := len(labels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return probs[order[a]] < probs[order[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && probs[order[j]] == probs[order[i]] {
			j++
		}
		// Tied scores share the average of ranks i+1..j (1-based).
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[order[k]] = avg
		}
		i = j
	}

	var nPos, nNeg int
	var sumPos float64
	for i, lab := range labels {
		if lab == 1 {
			nPos++
			sumPos += ranks[i]
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0, ErrSingleClass
	}
	u := sumPos - float64(nPos)*float64(nPos+1)/2
	return u / (float64(nPos) * float64(nNeg)), nil
}
