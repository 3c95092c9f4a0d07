package slotmap

// Int64Table maps keys to int64 values. It is the primitive-valued
// table the package grew out of; the alias keeps call sites reading as
// what they store while sharing the Table implementation.
type Int64Table[K comparable] = Table[K, int64]

// NewInt64Table creates an int64 table with its own indexer.
func NewInt64Table[K comparable](opts ...Option[K]) *Int64Table[K] {
	return New[K, int64](opts...)
}

// NewInt64TableOn layers an int64 table on an existing indexer.
func NewInt64TableOn[K comparable](ix *Indexer[K]) *Int64Table[K] {
	return NewTableOn[K, int64](ix)
}
