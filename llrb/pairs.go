package llrb

import "github.com/samber/lo"

// Pairs drains a forward, tombstone-skipping walk of the tree into a
// slice of live (key, value) pairs in ascending key order.
func (t *Tree[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.Size())
	it := t.Iterator()
	for it.Next() {
		pairs = append(pairs, it.Entry())
	}
	return pairs
}

// Keys returns the live keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	return lo.Map(t.Pairs(), func(p Pair[K, V], _ int) K { return p.Key })
}

// Values returns the live values in ascending key order.
func (t *Tree[K, V]) Values() []V {
	return lo.Map(t.Pairs(), func(p Pair[K, V], _ int) V { return p.Value })
}
