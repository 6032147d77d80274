package rf

import (
	"math"
	"math/rand"
	"sort"
)

// node is one CART node. Exported fields keep it gob-encodable.
type node struct {
	Leaf        bool
	Feature     int
	Threshold   float64 // x <= Threshold goes left; NaN goes left
	Left, Right *node
	N           int
	Probs       []float64 // leaf class distribution, forest class order
}

type treeConfig struct {
	maxDepth    int // 0 means unlimited
	minSplit    int
	maxFeatures int
	nClasses    int
}

type split struct {
	gain        float64
	feature     int
	threshold   float64
	left, right []int
}

// buildNode grows a gini CART node over the rows in idx.
func buildNode(x [][]float64, y []int, idx []int, depth int, cfg treeConfig, rnd *rand.Rand) *node {
	n := &node{N: len(idx)}
	counts := make([]int, cfg.nClasses)
	for _, i := range idx {
		counts[y[i]]++
	}
	if isPure(counts) || len(idx) < cfg.minSplit || (cfg.maxDepth > 0 && depth >= cfg.maxDepth) {
		return n.leaf(counts)
	}

	p := len(x[0])
	feats := rnd.Perm(p)
	if cfg.maxFeatures < p {
		feats = feats[:cfg.maxFeatures]
	}
	parent := gini(counts)
	best := split{feature: -1}
	for _, f := range feats {
		if s := bestSplit(x, y, idx, f, cfg.nClasses, parent); s.gain > best.gain {
			best = s
		}
	}
	if best.feature < 0 || best.gain <= 0 {
		return n.leaf(counts)
	}

	n.Feature = best.feature
	n.Threshold = best.threshold
	n.Left = buildNode(x, y, best.left, depth+1, cfg, rnd)
	n.Right = buildNode(x, y, best.right, depth+1, cfg, rnd)
	return n
}

func (n *node) leaf(counts []int) *node {
	n.Leaf = true
	n.Probs = make([]float64, len(counts))
	total := 0
	for _, c := range counts {
		total += c
	}
	for i, c := range counts {
		n.Probs[i] = float64(c) / float64(total)
	}
	return n
}

type cell struct {
	v float64
	i int
}

// bestSplit scans the midpoints between distinct values of feature f.
// Rows with a missing value always follow the left branch.
func bestSplit(x [][]float64, y []int, idx []int, f, nClasses int, parent float64) split {
	best := split{feature: -1}
	valid := make([]cell, 0, len(idx))
	var nans []int
	for _, i := range idx {
		if v := x[i][f]; math.IsNaN(v) {
			nans = append(nans, i)
		} else {
			valid = append(valid, cell{v, i})
		}
	}
	if len(valid) < 2 {
		return best
	}
	sort.Slice(valid, func(a, b int) bool { return valid[a].v < valid[b].v })

	total := len(idx)
	left := make([]int, nClasses)
	right := make([]int, nClasses)
	nLeft := len(nans)
	for _, i := range nans {
		left[y[i]]++
	}
	for _, c := range valid {
		right[y[c.i]]++
	}
	for s := 0; s < len(valid)-1; s++ {
		left[y[valid[s].i]]++
		right[y[valid[s].i]]--
		nLeft++
		if valid[s].v == valid[s+1].v {
			continue
		}
		w := float64(nLeft) / float64(total)
		gain := parent - w*gini(left) - (1-w)*gini(right)
		if gain > best.gain {
			best = split{
				gain:      gain,
				feature:   f,
				threshold: (valid[s].v + valid[s+1].v) / 2,
			}
			best.left = append(append([]int(nil), nans...), cells(valid[:s+1])...)
			best.right = cells(valid[s+1:])
		}
	}
	return best
}

func cells(cs []cell) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.i
	}
	return out
}

func (n *node) proba(x []float64) []float64 {
	for !n.Leaf {
		v := x[n.Feature]
		if math.IsNaN(v) || v <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Probs
}

func gini(counts []int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	g := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		g += p * (1 - p)
	}
	return g
}

func isPure(counts []int) bool {
	nz := 0
	for _, c := range counts {
		if c > 0 {
			nz++
		}
	}
	return nz <= 1
}
