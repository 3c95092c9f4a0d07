// Package slotmap provides a slot-allocating hash index and flat value
// tables layered on top of it.
//
// The core type is [Indexer]: an open-addressing hash table that maps
// each live key to a dense non-negative integer slot, stable until the
// key is removed. Value storage is deliberately separate — a table is
// just a flat array addressed by slot — so any number of typed stores
// can share one indexer and one hashing pass per operation:
//
//	ix := slotmap.NewIndexer[string]()
//	sizes := slotmap.NewInt64TableOn(ix)
//	labels := slotmap.NewTableOn[string, string](ix)
//
//	sizes.Put("alpha", 42)
//	labels.Put("alpha", "first")
//
// For the common single-store case, construct a table directly:
//
//	t := slotmap.NewInt64Table[string]()
//	t.Put("alpha", 42)
//	v, err := t.Get("alpha") // 42, nil
//	_, err = t.Get("beta")   // 0, ErrNoValue
//
// # Design
//
// Collisions are resolved by double hashing over a prime capacity, so
// every probe sequence visits every slot. Removal leaves a tombstone to
// keep colliding keys reachable; tombstones are purged when the table
// rehashes. Growth picks the next prime at least double the current
// capacity and re-derives every key's slot, notifying attached stores
// so they can rebuild their backing arrays.
//
// All operations are synchronous and in-memory, amortized O(1) outside
// of growth. Nothing is internally synchronized: a table and its
// indexer assume a single logical owner, and callers sharing one across
// goroutines must serialize all access externally.
package slotmap
