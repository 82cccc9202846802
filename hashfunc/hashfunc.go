package hashfunc

// HashAlgorithm - Interface that permits a caller of the patient store to supply a custom bucket
// selection algorithm suited for its particular distribution of CIs.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// A custom algorithm must have its table size set before it is given to a store, the index table is
	// created with one bucket per value in the range 0 -> table size - 1.
	//   - tableSize is the number of buckets the index table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given a CI it generates an index (bucket) between 0 and table size - 1.
	// It must return an error for keys that are not valid CIs, and any number returned outside the
	// table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key string) (bucketNo int64, err error)

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64
}
