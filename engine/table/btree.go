package table

import "github.com/google/btree"

// BTreeKey is any ordered key usable with BTree (UserId, ScriptId, ...).
type BTreeKey interface {
	Less(than BTreeKey) bool
}

// btreeItem adapts a (key, value) pair to google/btree's Item interface.
type btreeItem[V any] struct {
	key   BTreeKey
	value V
}

func (i btreeItem[V]) Less(than btree.Item) bool {
	return i.key.Less(than.(btreeItem[V]).key)
}

// BTree is an ordered key -> row table, used where iteration in key order
// matters (UserId, ScriptId indices).
type BTree[V any] struct {
	t *btree.BTree
}

// NewBTree constructs an empty BTree table with the given node degree.
func NewBTree[V any](degree int) *BTree[V] {
	return &BTree[V]{t: btree.New(degree)}
}

// Insert stores value at key, returning the previous value if one existed.
func (b *BTree[V]) Insert(key BTreeKey, value V) (V, bool) {
	old := b.t.ReplaceOrInsert(btreeItem[V]{key: key, value: value})
	if old == nil {
		var zero V
		return zero, false
	}
	return old.(btreeItem[V]).value, true
}

// Get returns the row stored at key, if any.
func (b *BTree[V]) Get(key BTreeKey) (V, bool) {
	item := b.t.Get(btreeItem[V]{key: key})
	if item == nil {
		var zero V
		return zero, false
	}
	return item.(btreeItem[V]).value, true
}

// Delete removes key's row, if any.
func (b *BTree[V]) Delete(key BTreeKey) bool {
	return b.t.Delete(btreeItem[V]{key: key}) != nil
}

// Len returns the number of rows.
func (b *BTree[V]) Len() int { return b.t.Len() }

// Ascend calls fn for every row in ascending key order, stopping early if
// fn returns false.
func (b *BTree[V]) Ascend(fn func(key BTreeKey, value V) bool) {
	b.t.Ascend(func(item btree.Item) bool {
		it := item.(btreeItem[V])
		return fn(it.key, it.value)
	})
}
