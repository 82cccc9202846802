package index

import (
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/hashfunc"
)

// GetBucketNo - Returns which bucket number the given id results in
//   - hashAlgorithm is the algorithm the index table was created with
//   - id is a CI
//
// It returns:
//   - bucketNo is the bucket between 0 and table size - 1
//   - err is the error from the hash algorithm, or an errs.Error with code IndexRange if the algorithm returned a bucket outside the table
func GetBucketNo(hashAlgorithm hashfunc.HashAlgorithm, id string) (bucketNo int64, err error) {
	bucketNo, err = hashAlgorithm.HashFunc1(id)
	if err != nil {
		return
	}

	if bucketNo < 0 || bucketNo >= hashAlgorithm.GetTableSize() {
		err = errs.New(errs.CodeIndexRange, "received bucket number %d from hash algorithm is outside permitted range", bucketNo)
		return
	}

	return
}

// CheckBucketNo - Returns an errs.Error with code IndexRange if bucketNo is not within the table
func CheckBucketNo(bucketNo, tableSize int64) (err error) {
	if bucketNo < 0 || bucketNo >= tableSize {
		err = errs.New(errs.CodeIndexRange, "bucket number %d outside table of size %d", bucketNo, tableSize)
	}

	return
}
