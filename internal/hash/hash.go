package hash

import "github.com/gostonefire/patientstore/record"

// ParseKey - Parses a CI into its integer value.
//   - ci is expected to be exactly 8 ASCII digits
//
// It returns:
//   - key is the numeric value of the CI
//   - err is an errs.Error with code CINull or CIFormat if ci is not a valid CI
func ParseKey(ci string) (key int64, err error) {
	if err = record.ValidateCI(ci); err != nil {
		return
	}

	for i := 0; i < len(ci); i++ {
		key = key*10 + int64(ci[i]-'0')
	}

	return
}

// ModuloHashAlgorithm - The internally used bucket selection algorithm, bucket = ParseKey(ci) mod tableSize.
// With a table far smaller than the key space collisions are expected, any two CIs that are equal modulo the
// table size share a bucket.
type ModuloHashAlgorithm struct {
	tableSize int64
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(tableSize int64) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the index table will address
func (M *ModuloHashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// HashFunc1 - Given a CI it generates an index (bucket) between 0 and table size - 1
func (M *ModuloHashAlgorithm) HashFunc1(key string) (bucketNo int64, err error) {
	k, err := ParseKey(key)
	if err != nil {
		return
	}

	bucketNo = k % M.tableSize
	return
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (M *ModuloHashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}
