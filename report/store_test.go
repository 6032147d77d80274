package report

import (
	"path/filepath"
	"testing"

	"gotest.tools/assert"

	"github.com/davidchyou/RF-Classifier/validate"
)

func Test_StoreSaveRun(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	assert.NilError(t, err)
	defer db.Close()

	result := &validate.Result{
		Classes: []string{"a", "b"},
		Curves: []*validate.ROC{
			{Class: "a", X: []float64{0.5, 1}, Y: []float64{1, 1}, AUC: 0.75, Label: "a (AUC = 0.750)"},
		},
		Degenerate: []string{"b"},
		Scores: []validate.Score{
			{ID: "r1", Label: "a", Probs: map[string]float64{"a": 0.8, "b": 0.2}},
			{ID: "r2", Label: "b", Probs: map[string]float64{"a": 0.4, "b": 0.6}},
		},
	}
	run, err := db.SaveRun("unit", result)
	assert.NilError(t, err)
	assert.Assert(t, run > 0)

	auc, err := db.AUC(run, "a")
	assert.NilError(t, err)
	assert.Equal(t, auc, 0.75)

	// a second run gets its own id
	run2, err := db.SaveRun("unit", result)
	assert.NilError(t, err)
	assert.Assert(t, run2 > run)
}
