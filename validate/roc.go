package validate

import (
	"fmt"
	"sort"

	"golang.org/x/xerrors"
)

// ErrDegenerateClass signals a class with no positive or no negative examples
// in the evaluated half, for which no ROC curve exists.
var ErrDegenerateClass = xerrors.New("degenerate class")

/*
ROC is one class's receiver-operating-characteristic curve: the (X[i], Y[i])
points in threshold-sweep order, the area under the curve, and a display label
combining the class name with the rounded area.
*/
type ROC struct {
	Class string
	X, Y  []float64 // false-positive rate, true-positive rate
	AUC   float64
	Label string
}

/*
NewROC computes the curve for one class from a score column and a binary truth
column of the same length. Pairs are ranked by score descending, ties keeping
input order, and the rates accumulated per element.

The area is the right-endpoint rectangle sum Σ (x_i − x_{i−1})·y_i over the
distinct-score steps, not a trapezoidal integral. That matches the rank-based
estimator the original scoring scheme used and is kept exactly for numerical
compatibility.
*/
func NewROC(class string, scores []float64, truth []bool) (*ROC, error) {
	var pos, neg int
	for _, v := range truth {
		if v {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, xerrors.Errorf("class %q has %d positives and %d negatives: %w",
			class, pos, neg, ErrDegenerateClass)
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	r := &ROC{
		Class: class,
		X:     make([]float64, len(order)),
		Y:     make([]float64, len(order)),
	}
	var cumPos, cumNeg int
	for i, j := range order {
		if truth[j] {
			cumPos++
		} else {
			cumNeg++
		}
		r.X[i] = float64(cumNeg) / float64(neg)
		r.Y[i] = float64(cumPos) / float64(pos)
	}
	// One rectangle per distinct-score step. A tied group moves both rates at
	// once and contributes its mean height, so the area does not depend on
	// the arbitrary order within the group.
	var px, py float64
	for i := 0; i < len(order); {
		j := i + 1
		for j < len(order) && scores[order[j]] == scores[order[i]] {
			j++
		}
		x, y := r.X[j-1], r.Y[j-1]
		r.AUC += (x - px) * (py + (y-py)/2)
		px, py = x, y
		i = j
	}
	r.Label = fmt.Sprintf("%s (AUC = %.3f)", class, r.AUC)
	return r, nil
}
