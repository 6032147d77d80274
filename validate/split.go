package validate

import (
	"math/rand"
	"sort"

	"github.com/davidchyou/RF-Classifier/fu"
	"github.com/davidchyou/RF-Classifier/tables"
)

/*
Split partitions the table's row indices into two disjoint, class-stratified
halves. For every class of size n it draws max(1, n/2) rows uniformly without
replacement into hold; the rest of the class goes to rest. Together the halves
cover every labeled row exactly once, and every class contributes at least one
row to hold; a size-1 class lands entirely in hold and is absent from rest.

The generator is injected so split outcomes are reproducible under a fixed
seed; classes are visited in sorted order for the same reason.
*/
func Split(t *tables.Table, rnd *rand.Rand) (hold, rest []int) {
	groups := t.ByClass()
	for _, class := range t.Classes() {
		index := append([]int(nil), groups[class]...)
		rnd.Shuffle(len(index), func(i, j int) {
			index[i], index[j] = index[j], index[i]
		})
		k := fu.Maxi(1, len(index)/2)
		hold = append(hold, index[:k]...)
		rest = append(rest, index[k:]...)
	}
	sort.Ints(hold)
	sort.Ints(rest)
	return
}
