package separatechaining

import (
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/hashfunc"
	"github.com/gostonefire/patientstore/internal/index"
	"github.com/gostonefire/patientstore/internal/model"
	"github.com/gostonefire/patientstore/internal/overflow"
)

// SCTable - Represents an index table where colliding entries are linked from their bucket into an overflow area.
// IndexEntry.Next holds the 1-based overflow number of the next entry in the chain, 0 ends the chain.
type SCTable struct {
	buckets       []model.IndexEntry
	overflow      []model.IndexEntry
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewSCTable - Returns a pointer to a new, empty, SCTable with one bucket per hash value
func NewSCTable(hashAlgorithm hashfunc.HashAlgorithm) *SCTable {
	return &SCTable{
		buckets:       make([]model.IndexEntry, hashAlgorithm.GetTableSize()),
		hashAlgorithm: hashAlgorithm,
	}
}

// Insert - Sets the position for id. An existing entry for id is updated in place, otherwise the entry is stored in
// its bucket or, if the bucket is taken by another id, appended to the bucket's chain.
//   - id is the CI of the record
//   - position is the slot number of the record
//
// It returns:
//   - bucketNo is the bucket the id hashes to
//   - err is an errs.Error if id is not a valid CI or the chain is broken
func (S *SCTable) Insert(id string, position int64) (bucketNo int64, err error) {
	bucketNo, err = index.GetBucketNo(S.hashAlgorithm, id)
	if err != nil {
		return
	}

	head := &S.buckets[bucketNo]
	if head.IsEmpty() {
		head.ID = id
		head.Position = position
		return
	}
	if head.ID == id {
		head.Position = position
		return
	}

	var last int64
	chain := overflow.NewChain(S.getOverflow, head.Next)
	for chain.HasNext() {
		var overflowNo int64
		var entry model.IndexEntry
		overflowNo, entry, err = chain.Next()
		if err != nil {
			return
		}
		if entry.ID == id {
			S.overflow[overflowNo-1].Position = position
			return
		}
		last = overflowNo
	}

	overflowNo := S.allocate(model.IndexEntry{ID: id, Position: position})
	if last == 0 {
		head.Next = overflowNo
	} else {
		S.overflow[last-1].Next = overflowNo
	}

	return
}

// Lookup - Returns the position stored for id by walking its bucket and chain.
//
// It returns:
//   - position is the slot number of the record
//   - bucketNo is the bucket the id hashes to
//   - err is either of type errs.ErrNotFound or another errs.Error if id is not a valid CI
func (S *SCTable) Lookup(id string) (position, bucketNo int64, err error) {
	bucketNo, err = index.GetBucketNo(S.hashAlgorithm, id)
	if err != nil {
		return
	}

	head := S.buckets[bucketNo]
	if head.IsEmpty() {
		err = errs.New(errs.CodeNotFound, "no index entry for CI %s", id)
		return
	}
	if head.ID == id {
		position = head.Position
		return
	}

	chain := overflow.NewChain(S.getOverflow, head.Next)
	for chain.HasNext() {
		var entry model.IndexEntry
		_, entry, err = chain.Next()
		if err != nil {
			return
		}
		if entry.ID == id {
			position = entry.Position
			return
		}
	}

	err = errs.New(errs.CodeNotFound, "no index entry for CI %s", id)

	return
}

// Remove - Unlinks the entry for id. If id is the bucket head, the first chained entry takes its place.
// It returns:
//   - err is either of type errs.ErrNotFound or another errs.Error if id is not a valid CI
func (S *SCTable) Remove(id string) (err error) {
	bucketNo, err := index.GetBucketNo(S.hashAlgorithm, id)
	if err != nil {
		return
	}

	head := &S.buckets[bucketNo]
	if head.IsEmpty() {
		return errs.New(errs.CodeNotFound, "no index entry for CI %s", id)
	}

	if head.ID == id {
		if head.Next == 0 {
			*head = model.IndexEntry{}
			return
		}
		promoted := head.Next
		*head = S.overflow[promoted-1]
		S.overflow[promoted-1] = model.IndexEntry{}
		return
	}

	var previous int64
	chain := overflow.NewChain(S.getOverflow, head.Next)
	for chain.HasNext() {
		var overflowNo int64
		var entry model.IndexEntry
		overflowNo, entry, err = chain.Next()
		if err != nil {
			return
		}
		if entry.ID == id {
			if previous == 0 {
				head.Next = entry.Next
			} else {
				S.overflow[previous-1].Next = entry.Next
			}
			S.overflow[overflowNo-1] = model.IndexEntry{}
			return
		}
		previous = overflowNo
	}

	return errs.New(errs.CodeNotFound, "no index entry for CI %s", id)
}

// GetBucket - Returns the entries of a bucket, head first followed by its chain
func (S *SCTable) GetBucket(bucketNo int64) (entries []model.IndexEntry, err error) {
	if err = index.CheckBucketNo(bucketNo, int64(len(S.buckets))); err != nil {
		return
	}

	head := S.buckets[bucketNo]
	if head.IsEmpty() {
		return
	}
	entries = append(entries, head)

	chain := overflow.NewChain(S.getOverflow, head.Next)
	for chain.HasNext() {
		var entry model.IndexEntry
		_, entry, err = chain.Next()
		if err != nil {
			return
		}
		entries = append(entries, entry)
	}

	return
}

// Entries - Returns all entries in bucket order, each bucket's chain following its head
func (S *SCTable) Entries() (entries []model.IndexEntry) {
	for i := range S.buckets {
		bucket, _ := S.GetBucket(int64(i))
		entries = append(entries, bucket...)
	}

	return
}

// Reset - Clears all buckets and the overflow area
func (S *SCTable) Reset() {
	for i := range S.buckets {
		S.buckets[i] = model.IndexEntry{}
	}
	S.overflow = S.overflow[:0]
}

// GetTableSize - Returns the number of buckets
func (S *SCTable) GetTableSize() int64 {
	return int64(len(S.buckets))
}

// getOverflow - Returns the overflow entry with the given 1-based number
func (S *SCTable) getOverflow(overflowNo int64) (entry model.IndexEntry, err error) {
	if overflowNo < 1 || overflowNo > int64(len(S.overflow)) {
		err = errs.New(errs.CodeIndexRange, "overflow number %d outside overflow area of size %d", overflowNo, len(S.overflow))
		return
	}

	entry = S.overflow[overflowNo-1]

	return
}

// allocate - Stores entry in the first free overflow slot, or appends it, and returns its 1-based number
func (S *SCTable) allocate(entry model.IndexEntry) (overflowNo int64) {
	for i := range S.overflow {
		if S.overflow[i].IsEmpty() {
			S.overflow[i] = entry
			return int64(i + 1)
		}
	}

	S.overflow = append(S.overflow, entry)

	return int64(len(S.overflow))
}
