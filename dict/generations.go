package dict

import (
	"iter"

	mathutil "github.com/tuannh982/hashdict/utils/math"
)

type generation struct {
	capacity int
	// maxProbe is the longest probe distance of an insertion made while this
	// capacity was current. Only OpenAddressMap tracks it.
	maxProbe int
}

// generations records every capacity a hash table has had, oldest first. Under
// GrowAppend an entry stays at the position it got under the capacity in effect
// when it was inserted, so lookups consult all of them, newest first.
type generations []generation

func newGenerations(capacity int) generations {
	return generations{{capacity: capacity}}
}

func (g *generations) push(capacity int) {
	*g = append(*g, generation{capacity: capacity})
}

func (g *generations) reset(capacity int) {
	*g = append((*g)[:0], generation{capacity: capacity})
}

// observe records an insertion made at probe distance d under the current capacity.
func (g generations) observe(d int) {
	cur := &g[len(g)-1]
	cur.maxProbe = max(cur.maxProbe, d)
}

// homes yields the home index of hash h under each capacity, newest first.
// Adjacent capacities agreeing on the index yield it once. An index may still
// repeat across non adjacent capacities.
func (g generations) homes(h int) iter.Seq[int] {
	return func(yield func(int) bool) {
		prev := -1
		for i := len(g) - 1; i >= 0; i-- {
			idx := mathutil.Mod(h, g[i].capacity)
			if idx == prev {
				continue
			}
			prev = idx
			if !yield(idx) {
				return
			}
		}
	}
}
