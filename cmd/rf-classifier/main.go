package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros/zlog"

	"github.com/davidchyou/RF-Classifier/fu"
	"github.com/davidchyou/RF-Classifier/model"
	"github.com/davidchyou/RF-Classifier/report"
	"github.com/davidchyou/RF-Classifier/rf"
	"github.com/davidchyou/RF-Classifier/tables"
)

func main() {
	args := struct {
		Data   string `arg:"positional,required" help:"input CSV: identifier, label, feature columns"`
		Train  bool   `help:"train a model from the labeled input"`
		Model  string `help:"model file: written in training mode, read in prediction mode"`
		OutDir string `help:"directory for output artifacts"`
		Store  string `help:"optional SQLite database to record the validation run"`
		Trees  int    `help:"number of forest trees"`
		Seed   int64  `help:"random seed; 0 means time-based"`
	}{
		Model:  "rf-model.xz",
		OutDir: ".",
	}
	arg.MustParse(&args)

	data, err := tables.ReadCSVFile(args.Data)
	if err != nil {
		fail(err)
	}
	modelPath := fu.ModelPath(args.Model)

	// Mode selection: train when asked for and the sample-size guard passes,
	// otherwise predict when a readable model exists, otherwise nothing.
	if args.Train {
		if err = model.CheckTrainable(data); err == nil {
			train(args.OutDir, args.Store, modelPath, args.Trees, args.Seed, data)
			return
		}
		zlog.Warning(fmt.Sprintf("training refused: %v", err))
	}
	if _, err := os.Stat(modelPath); err == nil {
		predict(args.OutDir, modelPath, data)
		return
	}
	zlog.Warning("nothing to do: no trainable data and no model file")
	os.Exit(1)
}

func train(outDir, store, modelPath string, trees int, seed int64, data *tables.Table) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fail(err)
	}
	m, err := model.Training{
		Trainer:   rf.Trainer{Trees: trees, Seed: seed},
		Seed:      seed,
		ModelFile: iokit.File(modelPath),
		Verbose:   func(s string) { fmt.Println(s) },
	}.Train(data)
	if err != nil {
		fail(err)
	}

	r := m.Validation
	if err = report.WriteScores(iokit.File(filepath.Join(outDir, "validation.csv")),
		data, r.Classes, r.Scores); err != nil {
		fail(err)
	}
	if err = report.WriteROC(iokit.File(filepath.Join(outDir, "roc.csv")), r.Curves); err != nil {
		fail(err)
	}
	if store != "" {
		db, err := report.Open(store)
		if err != nil {
			fail(err)
		}
		defer db.Close()
		if _, err = db.SaveRun(filepath.Base(modelPath), r); err != nil {
			fail(err)
		}
	}
	fmt.Printf("validation accuracy: %.3f\n", report.Accuracy(r.Scores))
	fmt.Printf("model written to %s\n", modelPath)
}

func predict(outDir, modelPath string, data *tables.Table) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fail(err)
	}
	m, err := model.Load(modelPath)
	if err != nil {
		fail(err)
	}
	scores, err := model.Predict(data, m)
	if err != nil {
		fail(err)
	}
	if err = report.WritePredictions(iokit.File(filepath.Join(outDir, "predictions.csv")),
		data, m.Classifier.Classes(), scores); err != nil {
		fail(err)
	}
	fmt.Printf("scored %d records\n", len(scores))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
