package model

import (
	"golang.org/x/xerrors"

	"github.com/davidchyou/RF-Classifier/tables"
	"github.com/davidchyou/RF-Classifier/validate"
)

/*
Predict scores every record of data against a previously trained model: one
score row per input record, one probability per class the model was trained
on. No labels are required, nothing is retrained and no validation runs.
The feature schema must match the one the model was fitted on.
*/
func Predict(data *tables.Table, m *Model) ([]validate.Score, error) {
	names := data.FeatureNames()
	if len(names) != len(m.Features) {
		return nil, xerrors.Errorf("model was trained on %d features, data has %d: %w",
			len(m.Features), len(names), tables.ErrSchema)
	}
	for i, name := range names {
		if name != m.Features[i] {
			return nil, xerrors.Errorf("feature %d is %q, model was trained on %q: %w",
				i, name, m.Features[i], tables.ErrSchema)
		}
	}
	probs, err := m.Classifier.PredictProba(data)
	if err != nil {
		return nil, err
	}
	out := make([]validate.Score, data.Len())
	for i := range out {
		out[i] = validate.Score{ID: data.ID(i), Label: data.Label(i), Probs: probs[i]}
	}
	return out, nil
}
