package model

import (
	"fmt"
	"math/rand"
	"time"

	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros"

	"github.com/davidchyou/RF-Classifier/tables"
	"github.com/davidchyou/RF-Classifier/validate"
)

/*
Training is the training pipeline configuration
*/
type Training struct {
	Trainer   validate.Trainer // classifier capability to fit with
	Seed      int64            // split randomness; time-based when zero
	ModelFile iokit.Output     // optional file to store the trained model
	Verbose   func(string)     // optional print function for progress lines
}

/*
Train fits the final full-data classifier, runs one leave-half-out validation
round over the same trainer, and packages both into a Model. Trainer failures
propagate unmodified. When ModelFile is set the packaged model is persisted
before returning.
*/
func (t Training) Train(data *tables.Table) (*Model, error) {
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t.verbose(fmt.Sprintf("fitting full model on %d records", data.Len()))
	full, err := t.Trainer.Fit(data)
	if err != nil {
		return nil, err
	}

	t.verbose("validating")
	result, err := validate.Validate(data, t.Trainer, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	for _, curve := range result.Curves {
		t.verbose(curve.Label)
	}
	for _, class := range result.Degenerate {
		t.verbose(fmt.Sprintf("%s (degenerate, no curve)", class))
	}

	m := &Model{
		Classifier: full,
		Features:   data.FeatureNames(),
		Validation: result,
	}
	if t.ModelFile != nil {
		if err = Save(m, t.ModelFile); err != nil {
			return nil, err
		}
	}
	return m, nil
}

/*
LuckyTrain trains and throws any occurred error as a panic
*/
func (t Training) LuckyTrain(data *tables.Table) *Model {
	m, err := t.Train(data)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return m
}

func (t Training) verbose(s string) {
	if t.Verbose != nil {
		t.Verbose(s)
	}
}
