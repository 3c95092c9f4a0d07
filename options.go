package slotmap

type options[K comparable] struct {
	capacity   int
	loadFactor float64
	hasher     Hasher[K]
}

// Option configures an Indexer and the tables built on it.
type Option[K comparable] func(*options[K])

// WithCapacity sets the requested initial capacity. The effective
// capacity is the next prime at or above the request; requests below 3
// are rounded up to 3, the default.
func WithCapacity[K comparable](capacity int) Option[K] {
	return func(o *options[K]) {
		o.capacity = capacity
	}
}

// WithLoadFactor sets the occupancy ratio that triggers growth. Values
// outside (0, 1) are ignored and the default of 0.65 is kept.
func WithLoadFactor[K comparable](loadFactor float64) Option[K] {
	return func(o *options[K]) {
		if loadFactor <= 0 || loadFactor >= 1 {
			return
		}
		o.loadFactor = loadFactor
	}
}

// WithHasher overrides the default maphash-based hasher.
//
// If nil is passed, ComparableHasher is used.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(o *options[K]) {
		if h == nil {
			h = ComparableHasher[K]
		}
		o.hasher = h
	}
}
