// Package reconcile partitions keyed collections into enter, update and exit
// sets against the keys bound by a previous pass.
//
// It knows nothing about drawing: callers pass plain items, a key function
// and the previously bound keys, and apply the partition to whatever backend
// they render to.
//
//	p := reconcile.Diff(boxes, func(b layout.Box, _ int) string { return b.ID }, bound)
//	for _, it := range p.Enter {
//		create(it.Key, it.Value)
//	}
package reconcile

// Item is one element of the new sequence with its key and position.
type Item[T any, K comparable] struct {
	Key   K
	Value T
	Index int // position in the new sequence
}

// Partition is the three-way split of a keyed collection.
// Enter and Update keep the new sequence's order; Exit keeps the previous
// order.
type Partition[T any, K comparable] struct {
	Enter  []Item[T, K]
	Update []Item[T, K]
	Exit   []K
}

// Keys returns the keys bound once the partition is applied, in new order.
func (p Partition[T, K]) Keys() []K {
	keys := make([]K, 0, len(p.Enter)+len(p.Update))
	for _, it := range p.Items() {
		keys = append(keys, it.Key)
	}
	return keys
}

// Items returns enter and update items merged back into new-sequence order.
func (p Partition[T, K]) Items() []Item[T, K] {
	items := make([]Item[T, K], 0, len(p.Enter)+len(p.Update))
	e, u := 0, 0
	for e < len(p.Enter) || u < len(p.Update) {
		switch {
		case u == len(p.Update):
			items = append(items, p.Enter[e])
			e++
		case e == len(p.Enter):
			items = append(items, p.Update[u])
			u++
		case p.Enter[e].Index < p.Update[u].Index:
			items = append(items, p.Enter[e])
			e++
		default:
			items = append(items, p.Update[u])
			u++
		}
	}
	return items
}

// Counts returns the sizes of the three sets.
func (p Partition[T, K]) Counts() (enter, update, exit int) {
	return len(p.Enter), len(p.Update), len(p.Exit)
}

// Empty reports whether p has no items in any set.
func (p Partition[T, K]) Empty() bool {
	return len(p.Enter) == 0 && len(p.Update) == 0 && len(p.Exit) == 0
}

// Diff splits items against prev.
//
// An item whose key is in prev is an update, otherwise an enter. A key of
// prev that no item produces is an exit. When several items share a key the
// first one wins and the rest are dropped; duplicates in prev count once.
func Diff[T any, K comparable](items []T, key func(T, int) K, prev []K) Partition[T, K] {
	bound := make(map[K]struct{}, len(prev))
	for _, k := range prev {
		bound[k] = struct{}{}
	}

	var p Partition[T, K]
	seen := make(map[K]struct{}, len(items))
	for i, v := range items {
		k := key(v, i)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		it := Item[T, K]{Key: k, Value: v, Index: i}
		if _, ok := bound[k]; ok {
			p.Update = append(p.Update, it)
		} else {
			p.Enter = append(p.Enter, it)
		}
	}

	for _, k := range prev {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		p.Exit = append(p.Exit, k)
	}
	return p
}

// ByPosition keys an item by its index in the sequence.
func ByPosition[T any](_ T, i int) int { return i }
