package slotmap

// Table maps keys to values of any type. It delegates all key
// bookkeeping to an Indexer and keeps a flat backing array addressed by
// the indexer's slots, so several tables can share one indexer and one
// slot assignment (see NewTableOn).
//
// Like the indexer it is not safe for concurrent use.
type Table[K comparable, V any] struct {
	indexer *Indexer[K]
	values  []V
}

// New creates a table with its own indexer.
func New[K comparable, V any](opts ...Option[K]) *Table[K, V] {
	return NewTableOn[K, V](NewIndexer(opts...))
}

// NewTableOn layers a table on an existing indexer. All tables on one
// indexer see the same keys at the same slots; each stores its own
// values. Keys assigned before the table was attached keep their slots,
// but their values in this table are zero until Put.
func NewTableOn[K comparable, V any](ix *Indexer[K]) *Table[K, V] {
	t := &Table[K, V]{
		indexer: ix,
		values:  make([]V, ix.Capacity()),
	}

	ix.Attach(t)

	return t
}

// Put associates value with key, replacing any previous value.
func (t *Table[K, V]) Put(key K, value V) {
	slot := t.indexer.Assign(key)
	if slot >= len(t.values) {
		t.sync()
	}
	t.values[slot] = value
}

// Get returns the value for key, or ErrNoValue if the key is absent.
func (t *Table[K, V]) Get(key K) (V, error) {
	slot := t.indexer.Lookup(key)
	if slot == SlotNone {
		var zero V
		return zero, ErrNoValue
	}

	return t.values[slot], nil
}

// Remove deletes key and reports whether it was present. The stored
// value is left in place; occupancy in the indexer is what gates reads,
// so the stale value is unreachable.
func (t *Table[K, V]) Remove(key K) bool {
	return t.indexer.Remove(key) != SlotNone
}

// RemoveAll deletes every key.
func (t *Table[K, V]) RemoveAll() {
	t.indexer.Clear()
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.indexer.Lookup(key) != SlotNone
}

// Len returns the number of keys.
func (t *Table[K, V]) Len() int {
	return t.indexer.Len()
}

// Keys appends every key to dst in slot order, reusing dst when its
// capacity suffices. See Indexer.Keys.
func (t *Table[K, V]) Keys(dst []K) []K {
	return t.indexer.Keys(dst)
}

// Indexer returns the underlying indexer, for layering further stores.
func (t *Table[K, V]) Indexer() *Indexer[K] {
	return t.indexer
}

// Relocate implements Store. Values are re-derived from the relocation
// table rather than copied forward by raw index: a rehash moves slots,
// so a positional copy would silently re-associate values with the
// wrong keys.
func (t *Table[K, V]) Relocate(moves []int, newCapacity int) {
	values := make([]V, newCapacity)

	for oldSlot, newSlot := range moves {
		if newSlot == SlotNone || oldSlot >= len(t.values) {
			continue
		}
		values[newSlot] = t.values[oldSlot]
	}

	t.values = values
}

// sync grows the backing array to the indexer's capacity. Only reached
// when the indexer grew before this table was attached to it.
func (t *Table[K, V]) sync() {
	values := make([]V, t.indexer.Capacity())
	copy(values, t.values)
	t.values = values
}
