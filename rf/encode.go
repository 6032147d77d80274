package rf

import (
	"math"
	"sort"
	"strconv"

	"github.com/davidchyou/RF-Classifier/tables"
)

/*
Feature cells arrive as text. A column where every non-empty cell parses as a
number stays numeric; any other column is label-encoded, each distinct value
getting a float code in sorted order. Codes learned at fit time travel with
the forest so prediction encodes identically. Empty cells and categories
unseen at fit time become NaN, which the trees route as missing.
*/

// learnCodes inspects each feature column and returns its categorical code
// book, nil for numeric columns.
func learnCodes(t *tables.Table) []map[string]float64 {
	p := len(t.FeatureNames())
	codes := make([]map[string]float64, p)
	for j := 0; j < p; j++ {
		numeric := true
		set := map[string]struct{}{}
		for i := 0; i < t.Len(); i++ {
			cell := t.Features(i)[j]
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
			}
			set[cell] = struct{}{}
		}
		if numeric {
			continue
		}
		values := make([]string, 0, len(set))
		for v := range set {
			values = append(values, v)
		}
		sort.Strings(values)
		codes[j] = make(map[string]float64, len(values))
		for k, v := range values {
			codes[j][v] = float64(k)
		}
	}
	return codes
}

// encode turns the table's feature cells into a float matrix under the given
// code books.
func encode(t *tables.Table, codes []map[string]float64) [][]float64 {
	x := make([][]float64, t.Len())
	for i := range x {
		row := t.Features(i)
		x[i] = make([]float64, len(row))
		for j, cell := range row {
			x[i][j] = encodeCell(cell, codes[j])
		}
	}
	return x
}

func encodeCell(cell string, code map[string]float64) float64 {
	if cell == "" {
		return math.NaN()
	}
	if code != nil {
		if v, ok := code[cell]; ok {
			return v
		}
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
