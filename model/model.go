package model

import (
	"golang.org/x/xerrors"

	"github.com/davidchyou/RF-Classifier/tables"
	"github.com/davidchyou/RF-Classifier/validate"
)

// ErrInsufficientSample signals that a dataset fails the training
// preconditions checked by CheckTrainable.
var ErrInsufficientSample = xerrors.New("insufficient sample")

// Training preconditions: class count range and the minimum members per class.
const (
	MinClasses   = 2
	MaxClasses   = 10
	MinClassSize = 5
)

/*
Model is a trained classifier together with its validation artifacts: the
per-class ROC curves and the merged full-coverage score table. It is created
by Training.Train, consumed read-only by Predict, and survives process
restarts through Save and Load.
*/
type Model struct {
	Classifier validate.Classifier
	Features   []string
	Validation *validate.Result
}

/*
CheckTrainable is the sample-size guard of the mode selector: training is
permitted for 2 to 10 distinct classes, each with at least 5 members. The
core pipelines assume this has been checked and do not enforce it themselves.
*/
func CheckTrainable(t *tables.Table) error {
	groups := t.ByClass()
	if len(groups) < MinClasses || len(groups) > MaxClasses {
		return xerrors.Errorf("%d classes, want %d..%d: %w",
			len(groups), MinClasses, MaxClasses, ErrInsufficientSample)
	}
	for class, index := range groups {
		if len(index) < MinClassSize {
			return xerrors.Errorf("class %q has %d members, want at least %d: %w",
				class, len(index), MinClassSize, ErrInsufficientSample)
		}
	}
	return nil
}
