package validate

import (
	"github.com/davidchyou/RF-Classifier/tables"
)

/*
Trainer is the classifier-fitting capability the validator drives. The
validator never inspects the fitted classifier beyond this interface, so it
can be exercised with a deterministic stub.
*/
type Trainer interface {
	Fit(t *tables.Table) (Classifier, error)
}

/*
Classifier scores rows with a per-class probability distribution,
one mapping per input row, aligned with the table's row order.
*/
type Classifier interface {
	Classes() []string
	PredictProba(t *tables.Table) ([]map[string]float64, error)
}

/*
Score is one record's scoring outcome: its identifier, its true label
(empty for prediction-only data) and one probability per known class.
*/
type Score struct {
	ID    string
	Label string
	Probs map[string]float64
}

// scoreRows applies a fitted classifier to every row of t.
func scoreRows(c Classifier, t *tables.Table) ([]Score, error) {
	probs, err := c.PredictProba(t)
	if err != nil {
		return nil, err
	}
	out := make([]Score, t.Len())
	for i := range out {
		out[i] = Score{ID: t.ID(i), Label: t.Label(i), Probs: probs[i]}
	}
	return out, nil
}
