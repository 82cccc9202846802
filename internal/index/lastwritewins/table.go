package lastwritewins

import (
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/hashfunc"
	"github.com/gostonefire/patientstore/internal/index"
	"github.com/gostonefire/patientstore/internal/model"
)

// LWWTable - Represents an index table where each bucket holds at most one entry and an insert overwrites whatever
// entry occupies the bucket. The collision link of the entries is never threaded.
type LWWTable struct {
	buckets       []model.IndexEntry
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewLWWTable - Returns a pointer to a new, empty, LWWTable with one bucket per hash value
func NewLWWTable(hashAlgorithm hashfunc.HashAlgorithm) *LWWTable {
	return &LWWTable{
		buckets:       make([]model.IndexEntry, hashAlgorithm.GetTableSize()),
		hashAlgorithm: hashAlgorithm,
	}
}

// Insert - Writes an entry for id at its bucket, overwriting any existing entry even if it belongs to another id.
//   - id is the CI of the record
//   - position is the slot number of the record
//
// It returns:
//   - bucketNo is the bucket the entry was written to
//   - err is an errs.Error if id is not a valid CI
func (L *LWWTable) Insert(id string, position int64) (bucketNo int64, err error) {
	bucketNo, err = index.GetBucketNo(L.hashAlgorithm, id)
	if err != nil {
		return
	}

	L.buckets[bucketNo] = model.IndexEntry{ID: id, Position: position}

	return
}

// Lookup - Returns the position stored for id.
// If another id has taken the bucket since id was inserted, id is reported as not found.
//
// It returns:
//   - position is the slot number of the record
//   - bucketNo is the bucket the id hashes to
//   - err is either of type errs.ErrNotFound or another errs.Error if id is not a valid CI
func (L *LWWTable) Lookup(id string) (position, bucketNo int64, err error) {
	bucketNo, err = index.GetBucketNo(L.hashAlgorithm, id)
	if err != nil {
		return
	}

	entry := L.buckets[bucketNo]
	if entry.IsEmpty() || entry.ID != id {
		err = errs.New(errs.CodeNotFound, "no index entry for CI %s", id)
		return
	}

	position = entry.Position

	return
}

// Remove - Clears the bucket that id hashes to, regardless of which id the entry belongs to
func (L *LWWTable) Remove(id string) (err error) {
	bucketNo, err := index.GetBucketNo(L.hashAlgorithm, id)
	if err != nil {
		return
	}

	L.buckets[bucketNo] = model.IndexEntry{}

	return
}

// GetBucket - Returns the entry of a bucket as a slice of zero or one entry
func (L *LWWTable) GetBucket(bucketNo int64) (entries []model.IndexEntry, err error) {
	if err = index.CheckBucketNo(bucketNo, int64(len(L.buckets))); err != nil {
		return
	}

	if !L.buckets[bucketNo].IsEmpty() {
		entries = []model.IndexEntry{L.buckets[bucketNo]}
	}

	return
}

// Entries - Returns all entries in use in bucket order
func (L *LWWTable) Entries() (entries []model.IndexEntry) {
	for _, entry := range L.buckets {
		if !entry.IsEmpty() {
			entries = append(entries, entry)
		}
	}

	return
}

// Reset - Clears all buckets
func (L *LWWTable) Reset() {
	for i := range L.buckets {
		L.buckets[i] = model.IndexEntry{}
	}
}

// GetTableSize - Returns the number of buckets
func (L *LWWTable) GetTableSize() int64 {
	return int64(len(L.buckets))
}
