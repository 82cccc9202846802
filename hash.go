package patientstore

import (
	"github.com/gostonefire/patientstore/internal/conf"
	"github.com/gostonefire/patientstore/internal/hash"
)

// ParseKey - Returns the integer value of a CI, or a CINull or CIFormat errs.Error if ci is not 8 ASCII digits
func ParseKey(ci string) (key int64, err error) {
	return hash.ParseKey(ci)
}

// Hash - Returns the bucket number a CI hashes to with the internal algorithm, ParseKey(ci) mod number of buckets
func Hash(ci string) (bucketNo int64, err error) {
	return hash.NewModuloHashAlgorithm(conf.BucketCount).HashFunc1(ci)
}
