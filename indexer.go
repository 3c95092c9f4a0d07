package slotmap

import (
	"hash/maphash"

	"github.com/hupe1980/slotmap/internal/prime"
)

// SlotNone is returned by Lookup and Remove when a key has no slot.
const SlotNone = -1

const (
	defaultCapacity   = 3
	defaultLoadFactor = 0.65
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

// Store is a value store layered on an Indexer. Stores keep a backing
// array addressed by slot; the indexer notifies them when a rehash has
// moved slots so they can rebuild that array.
type Store interface {
	// Relocate is called after the indexer has grown. moves maps every
	// pre-growth slot to its post-growth slot, SlotNone for slots that
	// held no live key. newCapacity is the capacity after growth.
	Relocate(moves []int, newCapacity int)
}

// Indexer assigns each live key a dense non-negative integer slot that
// stays stable until the key is removed. It is the shared indexing
// scheme behind Table and Int64Table: any number of value stores can be
// layered on one indexer and address their backing arrays by its slots.
//
// Collisions are resolved by open addressing with double hashing over a
// prime capacity, so a probe sequence visits every slot. Removal leaves
// a tombstone to keep colliding keys reachable; tombstones are purged
// whenever the table rehashes.
//
// An Indexer is not safe for concurrent use. A single logical owner
// must serialize all access.
type Indexer[K comparable] struct {
	seed       maphash.Seed
	hasher     Hasher[K]
	loadFactor float64

	keys   []K
	states []slotState
	count  int // occupied slots
	used   int // occupied + deleted slots
	// maxUsed is the watermark on used; crossing it rehashes, which
	// also purges tombstones.
	maxUsed int

	stores []Store
}

// NewIndexer creates an indexer with an initial prime capacity.
func NewIndexer[K comparable](opts ...Option[K]) *Indexer[K] {
	o := options[K]{
		capacity:   defaultCapacity,
		loadFactor: defaultLoadFactor,
		hasher:     ComparableHasher[K],
	}

	for _, opt := range opts {
		opt(&o)
	}

	capacity := prime.Next(o.capacity)

	return &Indexer[K]{
		seed:       maphash.MakeSeed(),
		hasher:     o.hasher,
		loadFactor: o.loadFactor,
		keys:       make([]K, capacity),
		states:     make([]slotState, capacity),
		maxUsed:    usedWatermark(capacity, o.loadFactor),
	}
}

// Attach registers a value store to be notified of slot relocations.
// Tables attach themselves at construction; call this directly only
// when implementing a custom store.
func (ix *Indexer[K]) Attach(s Store) {
	ix.stores = append(ix.stores, s)
}

// Assign returns the slot for key, allocating one if the key is absent.
// The slot of a present key is returned unchanged, so assigning twice
// is how callers overwrite a stored value in place.
func (ix *Indexer[K]) Assign(key K) int {
	if ix.used+1 > ix.maxUsed {
		ix.grow()
	}

	capacity := len(ix.states)
	slot, step := ix.probe(key)

	// Remember the first tombstone on the probe path but keep walking:
	// the key may live past it, and reusing the tombstone before
	// confirming absence would give the key two slots.
	tombstone := SlotNone

	for range capacity {
		switch ix.states[slot] {
		case slotOccupied:
			if ix.keys[slot] == key {
				return slot
			}
		case slotDeleted:
			if tombstone == SlotNone {
				tombstone = slot
			}
		case slotEmpty:
			target := slot
			if tombstone != SlotNone {
				target = tombstone
			} else {
				ix.used++
			}
			ix.keys[target] = key
			ix.states[target] = slotOccupied
			ix.count++
			return target
		}

		slot = (slot + step) % capacity
	}

	// The full cycle found no empty slot, so every non-occupied slot is
	// a tombstone and the first one is free for this key.
	if tombstone == SlotNone {
		panic("slotmap: probe cycle exhausted without a free slot")
	}

	ix.keys[tombstone] = key
	ix.states[tombstone] = slotOccupied
	ix.count++

	return tombstone
}

// Lookup returns the slot of key, or SlotNone if the key is absent.
// The probe stops at the first empty slot but continues past
// tombstones, since a key inserted after a deletion may live further
// along the sequence.
func (ix *Indexer[K]) Lookup(key K) int {
	capacity := len(ix.states)
	slot, step := ix.probe(key)

	for range capacity {
		switch ix.states[slot] {
		case slotEmpty:
			return SlotNone
		case slotOccupied:
			if ix.keys[slot] == key {
				return slot
			}
		}

		slot = (slot + step) % capacity
	}

	return SlotNone
}

// Remove vacates the slot of key and returns it, or SlotNone if the key
// is absent. The slot becomes a tombstone rather than empty so probe
// sequences of colliding keys stay intact until the next rehash.
func (ix *Indexer[K]) Remove(key K) int {
	slot := ix.Lookup(key)
	if slot == SlotNone {
		return SlotNone
	}

	var zero K
	ix.keys[slot] = zero // release the key reference
	ix.states[slot] = slotDeleted
	ix.count--

	return slot
}

// Clear resets every slot to empty at the current capacity.
func (ix *Indexer[K]) Clear() {
	clear(ix.keys)
	clear(ix.states)
	ix.count = 0
	ix.used = 0
}

// Len returns the number of live keys.
func (ix *Indexer[K]) Len() int {
	return ix.count
}

// Capacity returns the current slot-table capacity, always prime.
func (ix *Indexer[K]) Capacity() int {
	return len(ix.states)
}

// Keys appends every live key to dst in ascending slot order and
// returns the result. dst is reset and reused when its capacity
// suffices; pass nil to allocate. The order matches slot order, not
// insertion order.
func (ix *Indexer[K]) Keys(dst []K) []K {
	if cap(dst) >= ix.count {
		dst = dst[:0]
	} else {
		dst = make([]K, 0, ix.count)
	}

	for slot, state := range ix.states {
		if state == slotOccupied {
			dst = append(dst, ix.keys[slot])
		}
	}

	return dst
}

// probe derives the start slot and step width for key's probe sequence.
// The step is in [1, capacity-1] and the capacity is prime, so the two
// are coprime and the sequence is a full cycle over all slots.
func (ix *Indexer[K]) probe(key K) (slot, step int) {
	h := ix.hasher(ix.seed, key)
	capacity := uint64(len(ix.states))

	return int(h % capacity), int(1 + h%(capacity-1))
}

// grow rehashes into a capacity that brings the live load back under
// the watermark. When growth was triggered by tombstones alone the
// capacity can stay the same and the rehash just purges them. The new
// tables are fully built before being swapped in, so a panic mid-rehash
// (capacity overflow) leaves the indexer's prior state untouched.
func (ix *Indexer[K]) grow() {
	capacity := len(ix.states)
	for ix.count+1 > usedWatermark(capacity, ix.loadFactor) {
		capacity *= 2
		if capacity <= 0 {
			panic("slotmap: capacity overflow")
		}
	}
	capacity = prime.Next(capacity)

	newKeys := make([]K, capacity)
	newStates := make([]slotState, capacity)
	moves := make([]int, len(ix.states))

	for oldSlot, state := range ix.states {
		if state != slotOccupied {
			moves[oldSlot] = SlotNone
			continue
		}

		key := ix.keys[oldSlot]
		h := ix.hasher(ix.seed, key)
		slot := int(h % uint64(capacity))
		step := int(1 + h%uint64(capacity-1))

		for newStates[slot] == slotOccupied {
			slot = (slot + step) % capacity
		}

		newKeys[slot] = key
		newStates[slot] = slotOccupied
		moves[oldSlot] = slot
	}

	ix.keys = newKeys
	ix.states = newStates
	ix.used = ix.count
	ix.maxUsed = usedWatermark(capacity, ix.loadFactor)

	for _, s := range ix.stores {
		s.Relocate(moves, capacity)
	}
}

// usedWatermark keeps at least one slot empty at any load factor so
// probe cycles always terminate.
func usedWatermark(capacity int, loadFactor float64) int {
	w := int(float64(capacity) * loadFactor)
	if w < 1 {
		w = 1
	}
	if w >= capacity {
		w = capacity - 1
	}

	return w
}
