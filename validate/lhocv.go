/*
Package validate estimates a classifier's generalization performance by
leave-half-out cross-validation: one class-stratified 50/50 split, two
complementary train/score rounds, a merged full-coverage score table and a
per-class ROC/AUC report computed from it.
*/
package validate

import (
	"fmt"
	"math/rand"

	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"

	"github.com/davidchyou/RF-Classifier/tables"
)

/*
Result of one validation run: curves for every class that could be evaluated,
the names of classes flagged as degenerate, and the merged score table with
exactly one row per input record.
*/
type Result struct {
	Classes    []string
	Curves     []*ROC
	Degenerate []string
	Scores     []Score
}

/*
Validate runs the two complementary rounds: fit on rest and score hold, then
fit on hold and score rest. Each record ends up scored exactly once, by a
classifier that never saw it during its own fitting round.

Trainer failures propagate unmodified. A class that is degenerate in the
merged table (no positives or no negatives) is flagged and skipped; it never
aborts the other classes' curves. A class missing from one round's training
fold scores zero probability in that round, a known degradation of the
size-1-class edge case, not an error.
*/
func Validate(t *tables.Table, tr Trainer, rnd *rand.Rand) (*Result, error) {
	hold, rest := Split(t, rnd)

	a, err := tr.Fit(t.Select(rest))
	if err != nil {
		return nil, err
	}
	holdScores, err := scoreRows(a, t.Select(hold))
	if err != nil {
		return nil, err
	}

	b, err := tr.Fit(t.Select(hold))
	if err != nil {
		return nil, err
	}
	restScores, err := scoreRows(b, t.Select(rest))
	if err != nil {
		return nil, err
	}

	r := &Result{
		Classes: t.Classes(),
		Scores:  append(holdScores, restScores...),
	}
	for _, class := range r.Classes {
		scores := make([]float64, len(r.Scores))
		truth := make([]bool, len(r.Scores))
		for i, s := range r.Scores {
			scores[i] = s.Probs[class] // absent class scores 0
			truth[i] = s.Label == class
		}
		curve, err := NewROC(class, scores, truth)
		if xerrors.Is(err, ErrDegenerateClass) {
			zlog.Warning(fmt.Sprintf("skipping ROC for class %q: %v", class, err))
			r.Degenerate = append(r.Degenerate, class)
			continue
		}
		if err != nil {
			return nil, err
		}
		r.Curves = append(r.Curves, curve)
	}
	return r, nil
}
