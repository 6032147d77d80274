/*
Package report persists the artifacts of a training or prediction run: the
merged validation score table, the per-class ROC points, prediction scores,
and an optional SQLite store of the same data.
*/
package report

import (
	"encoding/csv"
	"strconv"

	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros"

	"github.com/davidchyou/RF-Classifier/fu"
	"github.com/davidchyou/RF-Classifier/tables"
	"github.com/davidchyou/RF-Classifier/validate"
)

/*
WriteScores writes the merged validation table: one row per input record with
its identifier, one probability column per class, the true label, and the
record's original feature columns. Rows come out in the input table's order
regardless of the order validation produced them in.
*/
func WriteScores(out iokit.Output, t *tables.Table, classes []string, scores []validate.Score) error {
	return writeScores(out, t, classes, scores, true)
}

// WritePredictions is WriteScores without the label column, for
// prediction-only data.
func WritePredictions(out iokit.Output, t *tables.Table, classes []string, scores []validate.Score) error {
	return writeScores(out, t, classes, scores, false)
}

func writeScores(out iokit.Output, t *tables.Table, classes []string, scores []validate.Score, labeled bool) error {
	byID := make(map[string]validate.Score, len(scores))
	for _, s := range scores {
		byID[s.ID] = s
	}

	head := append([]string{t.Fields()[0].Name}, classes...)
	if labeled {
		head = append(head, t.Fields()[1].Name)
	}
	head = append(head, t.FeatureNames()...)

	rows := make([][]string, t.Len())
	for i := range rows {
		s, ok := byID[t.ID(i)]
		if !ok {
			return zorros.Errorf("record %q has no score row", t.ID(i))
		}
		row := []string{s.ID}
		for _, class := range classes {
			row = append(row, formatProb(s.Probs[class]))
		}
		if labeled {
			row = append(row, t.Label(i))
		}
		rows[i] = append(row, t.Features(i)...)
	}
	return writeCSV(out, head, rows)
}

// WriteROC writes every curve's (fpr, tpr) points, one row per point,
// tagged with the class and its display label.
func WriteROC(out iokit.Output, curves []*validate.ROC) error {
	head := []string{"class", "label", "fpr", "tpr"}
	var rows [][]string
	for _, c := range curves {
		for i := range c.X {
			rows = append(rows, []string{c.Class, c.Label, formatProb(c.X[i]), formatProb(c.Y[i])})
		}
	}
	return writeCSV(out, head, rows)
}

/*
Accuracy is the share of score rows whose top-probability class equals the
true label, a one-number summary of the merged validation table.
*/
func Accuracy(scores []validate.Score) float64 {
	hits := make([]float64, len(scores))
	for i, s := range scores {
		if top(s.Probs) == s.Label {
			hits[i] = 1
		}
	}
	return fu.Mean(hits)
}

func top(probs map[string]float64) string {
	best, bestP := "", -1.0
	for class, p := range probs {
		if p > bestP || (p == bestP && class < best) {
			best, bestP = class, p
		}
	}
	return best
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

func writeCSV(out iokit.Output, head []string, rows [][]string) error {
	wh, err := out.Create()
	if err != nil {
		return zorros.Trace(err)
	}
	defer wh.End()
	cw := csv.NewWriter(wh)
	if err = cw.Write(head); err != nil {
		return zorros.Trace(err)
	}
	for _, row := range rows {
		if err = cw.Write(row); err != nil {
			return zorros.Trace(err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return zorros.Trace(err)
	}
	if err = wh.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}
