package model

import (
	"fmt"
	"testing"

	"golang.org/x/xerrors"
	"gotest.tools/assert"

	"github.com/davidchyou/RF-Classifier/tables"
	"github.com/davidchyou/RF-Classifier/validate"
)

func testTable(t *testing.T, classes []string, sizes []int) *tables.Table {
	t.Helper()
	fields := []tables.Field{
		{Name: "id", Role: tables.ID},
		{Name: "class", Role: tables.Label},
		{Name: "f1", Role: tables.Feature},
		{Name: "f2", Role: tables.Feature},
	}
	var rows [][]string
	for c, class := range classes {
		for i := 0; i < sizes[c]; i++ {
			rows = append(rows, []string{
				fmt.Sprintf("%s-%d", class, i),
				class,
				fmt.Sprintf("%d.%d", c, i),
				fmt.Sprintf("%d", c*10+i),
			})
		}
	}
	tab, err := tables.New(fields, rows)
	assert.NilError(t, err)
	return tab
}

// memorizeTrainer fits a classifier that recalls the exact labels it saw,
// scoring 1.0 for a memorized record's class and uniformly otherwise.
type memorizeTrainer struct{}

type memorizeModel struct {
	classes []string
	labels  map[string]string
}

func (memorizeTrainer) Fit(t *tables.Table) (validate.Classifier, error) {
	m := memorizeModel{classes: t.Classes(), labels: map[string]string{}}
	for i := 0; i < t.Len(); i++ {
		m.labels[t.ID(i)] = t.Label(i)
	}
	return m, nil
}

func (m memorizeModel) Classes() []string { return m.classes }

func (m memorizeModel) PredictProba(t *tables.Table) ([]map[string]float64, error) {
	out := make([]map[string]float64, t.Len())
	for i := range out {
		out[i] = map[string]float64{}
		if label, ok := m.labels[t.ID(i)]; ok {
			out[i][label] = 1
			continue
		}
		for _, c := range m.classes {
			out[i][c] = 1 / float64(len(m.classes))
		}
	}
	return out, nil
}

func Test_CheckTrainable(t *testing.T) {
	assert.NilError(t, CheckTrainable(testTable(t, []string{"a", "b"}, []int{5, 5})))

	err := CheckTrainable(testTable(t, []string{"a", "b", "c"}, []int{6, 5, 4}))
	assert.Assert(t, xerrors.Is(err, ErrInsufficientSample), "class of 4 must be refused")

	err = CheckTrainable(testTable(t, []string{"a"}, []int{9}))
	assert.Assert(t, xerrors.Is(err, ErrInsufficientSample), "one class")

	classes := make([]string, 11)
	sizes := make([]int, 11)
	for i := range classes {
		classes[i] = fmt.Sprintf("c%02d", i)
		sizes[i] = 5
	}
	err = CheckTrainable(testTable(t, classes, sizes))
	assert.Assert(t, xerrors.Is(err, ErrInsufficientSample), "11 classes")
}

func Test_TrainingPackagesValidation(t *testing.T) {
	tab := testTable(t, []string{"a", "b"}, []int{6, 6})
	var lines []string
	m, err := Training{
		Trainer: memorizeTrainer{},
		Seed:    42,
		Verbose: func(s string) { lines = append(lines, s) },
	}.Train(tab)
	assert.NilError(t, err)
	assert.Equal(t, len(m.Validation.Scores), tab.Len())
	assert.Equal(t, len(m.Validation.Curves), 2)
	assert.DeepEqual(t, m.Features, []string{"f1", "f2"})
	assert.Assert(t, len(lines) > 0)
}

func Test_PredictRoundTrip(t *testing.T) {
	// predicting on the exact rows used to fit a memorizing classifier
	// returns probability 1 for the true class of every row
	tab := testTable(t, []string{"a", "b"}, []int{6, 6})
	m, err := Training{Trainer: memorizeTrainer{}, Seed: 42}.Train(tab)
	assert.NilError(t, err)

	scores, err := Predict(tab, m)
	assert.NilError(t, err)
	assert.Equal(t, len(scores), tab.Len())
	for i, s := range scores {
		assert.Equal(t, s.ID, tab.ID(i))
		assert.Equal(t, s.Probs[tab.Label(i)], 1.0)
	}
}

func Test_PredictSchemaMismatch(t *testing.T) {
	tab := testTable(t, []string{"a", "b"}, []int{6, 6})
	m, err := Training{Trainer: memorizeTrainer{}, Seed: 42}.Train(tab)
	assert.NilError(t, err)

	other, err := tables.New([]tables.Field{
		{Name: "id", Role: tables.ID},
		{Name: "class", Role: tables.Label},
		{Name: "different", Role: tables.Feature},
		{Name: "f2", Role: tables.Feature},
	}, [][]string{{"x", "", "1", "2"}})
	assert.NilError(t, err)

	_, err = Predict(other, m)
	assert.Assert(t, xerrors.Is(err, tables.ErrSchema))
}
