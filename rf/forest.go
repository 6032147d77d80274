/*
Package rf implements the one classifier family this system supports: a
random forest of gini CART trees with per-class probability output. It
satisfies the validate.Trainer capability, so the validation core never
depends on it directly.
*/
package rf

import (
	"encoding/gob"
	"math"
	"math/rand"
	"sync"
	"time"

	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/gonum/floats"

	"github.com/davidchyou/RF-Classifier/fu"
	"github.com/davidchyou/RF-Classifier/tables"
	"github.com/davidchyou/RF-Classifier/validate"
)

const DefaultTrees = 100

func init() {
	gob.Register(&Forest{})
}

/*
Trainer fits a Forest. Zero values mean defaults: DefaultTrees trees,
unlimited depth, min split of 2, sqrt(p) features per split, time-based seed.
*/
type Trainer struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int
	Seed            int64
}

/*
Forest is a fitted random forest: the class set and feature schema it was
trained on, the categorical code books, and the trees. It is gob-encodable
for persistence.
*/
type Forest struct {
	ClassNames   []string
	FeatureNames []string
	Codes        []map[string]float64
	Trees        []*node
}

/*
Fit trains a forest on the labeled rows of data. Each tree gets a bootstrap
sample and a generator derived from the trainer seed, so fitting is
reproducible under a fixed seed; trees grow concurrently.
*/
func (t Trainer) Fit(data *tables.Table) (validate.Classifier, error) {
	var labeled []int
	for i := 0; i < data.Len(); i++ {
		if data.Labeled(i) {
			labeled = append(labeled, i)
		}
	}
	if len(labeled) == 0 {
		return nil, zorros.Errorf("no labeled rows to fit")
	}
	if len(labeled) < data.Len() {
		data = data.Select(labeled)
	}

	classes := data.Classes()
	index := map[string]int{}
	for i, c := range classes {
		index[c] = i
	}
	y := make([]int, data.Len())
	for i := range y {
		y[i] = index[data.Label(i)]
	}
	codes := learnCodes(data)
	x := encode(data, codes)

	n := data.Len()
	p := len(data.FeatureNames())
	cfg := treeConfig{
		maxDepth:    t.MaxDepth,
		minSplit:    fu.Maxi(t.MinSamplesSplit, 2),
		maxFeatures: fu.Mini(fu.Fnzi(t.MaxFeatures, fu.Maxi(1, int(math.Sqrt(float64(p))))), p),
		nClasses:    len(classes),
	}
	seed := t.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	trees := make([]*node, fu.Fnzi(t.Trees, DefaultTrees))
	var wg sync.WaitGroup
	for i := range trees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed + int64(i)))
			sample := make([]int, n)
			for j := range sample {
				sample[j] = rnd.Intn(n)
			}
			trees[i] = buildNode(x, y, sample, 0, cfg, rnd)
		}(i)
	}
	wg.Wait()

	return &Forest{
		ClassNames:   classes,
		FeatureNames: data.FeatureNames(),
		Codes:        codes,
		Trees:        trees,
	}, nil
}

// Classes returns the class set the forest was trained on.
func (f *Forest) Classes() []string { return f.ClassNames }

/*
PredictProba scores every row of t with the forest's averaged tree
distributions, one class-to-probability mapping per row.
*/
func (f *Forest) PredictProba(t *tables.Table) ([]map[string]float64, error) {
	probas, err := f.probas(t)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]float64, len(probas))
	for i, pr := range probas {
		out[i] = make(map[string]float64, len(f.ClassNames))
		for j, c := range f.ClassNames {
			out[i][c] = pr[j]
		}
	}
	return out, nil
}

// Predict returns the majority class per row.
func (f *Forest) Predict(t *tables.Table) ([]string, error) {
	probas, err := f.probas(t)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(probas))
	for i, pr := range probas {
		out[i] = f.ClassNames[fu.Indmaxd(pr)]
	}
	return out, nil
}

func (f *Forest) probas(t *tables.Table) ([][]float64, error) {
	if len(f.Trees) == 0 {
		return nil, zorros.Errorf("forest is not fitted")
	}
	if got := len(t.FeatureNames()); got != len(f.FeatureNames) {
		return nil, zorros.Errorf("forest was fitted on %d features, data has %d", len(f.FeatureNames), got)
	}
	x := encode(t, f.Codes)
	out := make([][]float64, len(x))
	for i, xi := range x {
		acc := make([]float64, len(f.ClassNames))
		for _, root := range f.Trees {
			floats.Add(acc, root.proba(xi))
		}
		floats.Scale(1/float64(len(f.Trees)), acc)
		out[i] = acc
	}
	return out, nil
}
