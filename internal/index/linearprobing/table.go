package linearprobing

import (
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/hashfunc"
	"github.com/gostonefire/patientstore/internal/index"
	"github.com/gostonefire/patientstore/internal/model"
)

// LPTable - Represents an open addressing index table. In case of a collision it probes through the buckets one
// by one, wrapping around at the end, until it finds the entry or an empty bucket.
type LPTable struct {
	buckets       []model.IndexEntry
	states        []uint8
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewLPTable - Returns a pointer to a new, empty, LPTable with one bucket per hash value
func NewLPTable(hashAlgorithm hashfunc.HashAlgorithm) *LPTable {
	return &LPTable{
		buckets:       make([]model.IndexEntry, hashAlgorithm.GetTableSize()),
		states:        make([]uint8, hashAlgorithm.GetTableSize()),
		hashAlgorithm: hashAlgorithm,
	}
}

// Insert - Sets the position for id. An existing entry for id is updated in place, otherwise the entry is stored in
// the first deleted or empty bucket along the probe sequence.
//   - id is the CI of the record
//   - position is the slot number of the record
//
// It returns:
//   - bucketNo is the bucket the entry ended up in
//   - err is an errs.Error with code OutOfRange if every bucket is occupied, or a CI error
func (L *LPTable) Insert(id string, position int64) (bucketNo int64, err error) {
	home, err := index.GetBucketNo(L.hashAlgorithm, id)
	if err != nil {
		return
	}

	// A deleted bucket is remembered but probing continues, since id may still be further down the sequence
	tableSize := int64(len(L.buckets))
	deleted := int64(-1)
	for i := int64(0); i < tableSize; i++ {
		probe := (home + i) % tableSize
		switch L.states[probe] {
		case model.EntryOccupied:
			if L.buckets[probe].ID == id {
				L.buckets[probe].Position = position
				bucketNo = probe
				return
			}
		case model.EntryDeleted:
			if deleted < 0 {
				deleted = probe
			}
		case model.EntryEmpty:
			if deleted < 0 {
				deleted = probe
			}
			bucketNo = L.set(deleted, id, position)
			return
		}
	}

	if deleted < 0 {
		err = errs.New(errs.CodeOutOfRange, "index table is full, no bucket available for CI %s", id)
		return
	}

	bucketNo = L.set(deleted, id, position)

	return
}

// Lookup - Returns the position stored for id by probing from its home bucket.
//
// It returns:
//   - position is the slot number of the record
//   - bucketNo is the bucket the entry was found in
//   - err is either of type errs.ErrNotFound or another errs.Error if id is not a valid CI
func (L *LPTable) Lookup(id string) (position, bucketNo int64, err error) {
	bucketNo, err = L.find(id)
	if err != nil {
		return
	}

	position = L.buckets[bucketNo].Position

	return
}

// Remove - Marks the bucket holding id as deleted
// It returns:
//   - err is either of type errs.ErrNotFound or another errs.Error if id is not a valid CI
func (L *LPTable) Remove(id string) (err error) {
	bucketNo, err := L.find(id)
	if err != nil {
		return
	}

	L.buckets[bucketNo] = model.IndexEntry{}
	L.states[bucketNo] = model.EntryDeleted

	return
}

// GetBucket - Returns the entry of a bucket as a slice of zero or one entry
func (L *LPTable) GetBucket(bucketNo int64) (entries []model.IndexEntry, err error) {
	if err = index.CheckBucketNo(bucketNo, int64(len(L.buckets))); err != nil {
		return
	}

	if L.states[bucketNo] == model.EntryOccupied {
		entries = []model.IndexEntry{L.buckets[bucketNo]}
	}

	return
}

// Entries - Returns all entries in bucket order
func (L *LPTable) Entries() (entries []model.IndexEntry) {
	for i, entry := range L.buckets {
		if L.states[i] == model.EntryOccupied {
			entries = append(entries, entry)
		}
	}

	return
}

// Reset - Clears all buckets, including deleted markers
func (L *LPTable) Reset() {
	for i := range L.buckets {
		L.buckets[i] = model.IndexEntry{}
		L.states[i] = model.EntryEmpty
	}
}

// GetTableSize - Returns the number of buckets
func (L *LPTable) GetTableSize() int64 {
	return int64(len(L.buckets))
}

// find - Returns the bucket holding id
func (L *LPTable) find(id string) (bucketNo int64, err error) {
	home, err := index.GetBucketNo(L.hashAlgorithm, id)
	if err != nil {
		return
	}

	// An empty bucket ends the probe sequence, id can never have been inserted beyond it
	tableSize := int64(len(L.buckets))
	for i := int64(0); i < tableSize; i++ {
		probe := (home + i) % tableSize
		if L.states[probe] == model.EntryEmpty {
			break
		}
		if L.states[probe] == model.EntryOccupied && L.buckets[probe].ID == id {
			bucketNo = probe
			return
		}
	}

	err = errs.New(errs.CodeNotFound, "no index entry for CI %s", id)

	return
}

// set - Stores an entry in bucketNo and marks it occupied
func (L *LPTable) set(bucketNo int64, id string, position int64) int64 {
	L.buckets[bucketNo] = model.IndexEntry{ID: id, Position: position}
	L.states[bucketNo] = model.EntryOccupied

	return bucketNo
}
