// Package classifier implements the Linear Classifier: scoring a feature
// row against a weight matrix, then deriving a ranked verdict list and a
// probability distribution from the raw scores.
package classifier

import (
	"math"
	"sort"
)

// Score computes S = X*W for one row: row has length F, weights is F*C
// row-major, classCount is C. The result has length classCount.
func Score(row []float64, weights []float64, featureCount, classCount int) []float64 {
	scores := make([]float64, classCount)
	for c := 0; c < classCount; c++ {
		var s float64
		for f := 0; f < featureCount; f++ {
			s += row[f] * weights[f*classCount+c]
		}
		scores[c] = s
	}
	return scores
}

// RankedClass is one entry of a sorted verdict list: a class index paired
// with its raw score.
type RankedClass struct {
	Index int
	Score float64
}

// SortedClasses stable-sorts scores in descending order. NaN scores sink
// to the end (a NaN never compares greater than anything, so without
// special handling sort.SliceStable would leave them in unpredictable
// positions); ties, including NaN ties, keep their original ascending
// index order because the sort is stable and the comparator treats equal
// scores as equal.
func SortedClasses(scores []float64) []RankedClass {
	ranked := make([]RankedClass, len(scores))
	for i, s := range scores {
		ranked[i] = RankedClass{Index: i, Score: s}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Score, ranked[j].Score
		aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
		if aNaN && bNaN {
			return false
		}
		if aNaN {
			return false
		}
		if bNaN {
			return true
		}
		return a > b
	})
	return ranked
}

// Probabilities maps raw scores to a distribution that sums to 1. This is
// deliberately not softmax: each score s is first scaled by 100, then
// mapped through exp(v) when v is negative or v+1 when v is
// non-negative, and the resulting vector is normalized by its sum. The
// asymmetric map must match byte-for-byte, not merely approximate,
// whatever trained the weight matrix this score came from.
func Probabilities(scores []float64) []float64 {
	mapped := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		v := s * 100
		var m float64
		if v < 0 {
			m = math.Exp(v)
		} else {
			m = v + 1
		}
		mapped[i] = m
		sum += m
	}
	if sum == 0 {
		uniform := 1.0 / float64(len(scores))
		for i := range mapped {
			mapped[i] = uniform
		}
		return mapped
	}
	for i := range mapped {
		mapped[i] /= sum
	}
	return mapped
}
