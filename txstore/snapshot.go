package txstore

import "github.com/tidwall/btree"

// Snapshot is a read-only view of committed state as it was when the
// snapshot was taken. Later commits are not visible through it.
type Snapshot[V any] struct {
	data *btree.Map[string, V]
}

func (s *Snapshot[V]) Get(key string) (V, bool) {
	return s.data.Get(key)
}

func (s *Snapshot[V]) Len() int {
	return s.data.Len()
}

func (s *Snapshot[V]) Keys() []string {
	return s.data.Keys()
}

// Scan visits entries in key order until fn returns false.
func (s *Snapshot[V]) Scan(fn func(key string, value V) bool) {
	s.data.Scan(fn)
}
