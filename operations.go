package patientstore

import (
	"errors"
	"fmt"

	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/model"
	"github.com/gostonefire/patientstore/internal/storage"
	"github.com/gostonefire/patientstore/record"
	"github.com/rs/zerolog/log"
)

// Add - Appends a record to the in-memory table and indexes it under its CI.
//   - r is a record constructed by record.New
//
// It returns:
//   - position is the slot number the record was stored in
//   - err is an errs.Error with code OutOfRange if the table is full, Duplicate if the CI is already indexed or
//     a CI error, in which case the store is left unchanged
func (S *Store) Add(r record.Record) (position int64, err error) {
	if int64(len(S.slots)) >= S.capacity {
		err = errs.New(errs.CodeOutOfRange, "store is full, capacity %d reached", S.capacity)
		return
	}

	_, _, err = S.index.Lookup(r.ID)
	if err == nil {
		err = errs.New(errs.CodeDuplicate, "patient with CI %s already exists", r.ID)
		return
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return
	}

	position = int64(len(S.slots))
	if _, err = S.index.Insert(r.ID, position); err != nil {
		return
	}
	S.slots = append(S.slots, model.Slot{State: model.SlotOccupied, Record: r})

	log.Debug().Str("ci", r.ID).Int64("position", position).Msg("store: record added.")

	return
}

// Update - Overwrites the record stored under id and refreshes its index entry.
//   - id is the CI of an existing record
//   - r is the new record, its CI must equal id
//
// It returns:
//   - err is either of type errs.ErrNotFound, errs.ErrInvalidArgument if r has another CI, or another errs.Error
func (S *Store) Update(id string, r record.Record) (err error) {
	position, _, err := S.lookup(id)
	if err != nil {
		return
	}

	if r.ID != id {
		return errs.New(errs.CodeInvalidArgument, "record CI %s does not match CI %s, a CI can not be changed", r.ID, id)
	}

	S.slots[position].Record = r
	if _, err = S.index.Insert(id, position); err != nil {
		return
	}

	log.Debug().Str("ci", id).Int64("position", position).Msg("store: record updated.")

	return
}

// Delete - Marks the slot of the record deleted and removes its index entry. The slot stays consumed until the
// next SaveRecords compacts the table.
//   - id is the CI of an existing record
//
// It returns:
//   - err is either of type errs.ErrNotFound or another errs.Error
func (S *Store) Delete(id string) (err error) {
	position, _, err := S.lookup(id)
	if err != nil {
		return
	}

	if err = S.index.Remove(id); err != nil {
		return
	}
	S.slots[position] = model.Slot{State: model.SlotDeleted}

	log.Debug().Str("ci", id).Int64("position", position).Msg("store: record deleted.")

	return
}

// Get - Returns the record stored under id from memory.
//   - id is the CI of the record
//
// It returns:
//   - r is the record
//   - bucketNo is the bucket the id hashes to
//   - err is either of type errs.ErrNotFound or another errs.Error
func (S *Store) Get(id string) (r record.Record, bucketNo int64, err error) {
	position, bucketNo, err := S.lookup(id)
	if err != nil {
		return
	}

	r = S.slots[position].Record

	return
}

// GetFromFile - Returns the record stored under id by reading its slot in the record file. The result reflects the
// last sync, not unsaved changes in memory.
//   - id is the CI of the record
//
// It returns:
//   - r is the record read from file
//   - bucketNo is the bucket the id hashes to
//   - err is errs.ErrNotFound if the id is not indexed or its slot in file holds another CI, errs.ErrIO if the
//     slot lies beyond end of file
func (S *Store) GetFromFile(id string) (r record.Record, bucketNo int64, err error) {
	position, bucketNo, err := S.index.Lookup(id)
	if err != nil {
		return
	}

	r, err = storage.ReadRecordAt(S.recordFileName, position)
	if err != nil {
		err = fmt.Errorf("error while reading record for CI %s from file: %w", id, err)
		return
	}

	if r.ID != id {
		err = errs.New(errs.CodeNotFound, "slot %d of record file holds CI %s, not %s", position, r.ID, id)
		r = record.Record{}
		return
	}

	return
}

// ScheduleAppointment - Sets a new appointment date on the record stored under id.
// The record is looked up before the date is checked.
//   - id is the CI of an existing record
//   - date is the new date, exactly 10 characters (YYYY-MM-DD)
func (S *Store) ScheduleAppointment(id, date string) (err error) {
	r, _, err := S.Get(id)
	if err != nil {
		return
	}

	if err = record.ValidateAppointmentDate(date); err != nil {
		return
	}

	r.AppointmentDate = date

	return S.Update(id, r)
}

// IndexInsert - Inserts an index entry directly, following the collision resolution technique in use.
// The position must refer to a live record in the in-memory table.
//   - id is a CI
//   - position is the slot number to associate with id
//
// It returns:
//   - bucketNo is the bucket the id hashes to
//   - err is an errs.Error with code IndexRange if position is not a live slot, or a CI error
func (S *Store) IndexInsert(id string, position int64) (bucketNo int64, err error) {
	if position < 0 || position >= int64(len(S.slots)) || !S.slots[position].InUse() {
		err = errs.New(errs.CodeIndexRange, "position %d does not hold a record", position)
		return
	}

	return S.index.Insert(id, position)
}

// Records - Returns the live records in slot order
func (S *Store) Records() (records []record.Record) {
	records = make([]record.Record, 0, len(S.slots))
	for _, slot := range S.slots {
		if slot.InUse() {
			records = append(records, slot.Record)
		}
	}

	return
}

// Count - Returns the number of live records
func (S *Store) Count() (count int64) {
	for _, slot := range S.slots {
		if slot.InUse() {
			count++
		}
	}

	return
}

// Capacity - Returns the max number of slots in the in-memory table
func (S *Store) Capacity() int64 {
	return S.capacity
}

// Stat - Walks through the entire set of buckets and produce an IndexStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of entries per bucket, false will set IndexStat.BucketDistribution to nil.
func (S *Store) Stat(includeDistribution bool) (indexStat *IndexStat, err error) {
	var bucket []model.IndexEntry
	var is IndexStat

	numberOfBuckets := S.index.GetTableSize()
	if includeDistribution {
		is.BucketDistribution = make([]int64, numberOfBuckets)
	}

	for i := int64(0); i < numberOfBuckets; i++ {
		bucket, err = S.index.GetBucket(i)
		if err != nil {
			return
		}
		if len(bucket) == 0 {
			continue
		}

		is.Entries += int64(len(bucket))
		is.BucketEntries++
		is.OverflowEntries += int64(len(bucket) - 1)
		if includeDistribution {
			is.BucketDistribution[i] = int64(len(bucket))
		}
	}

	indexStat = &is
	return
}

// lookup - Resolves id to a position of a live slot
func (S *Store) lookup(id string) (position, bucketNo int64, err error) {
	position, bucketNo, err = S.index.Lookup(id)
	if err != nil {
		return
	}

	if position < 0 || position >= int64(len(S.slots)) || !S.slots[position].InUse() {
		err = errs.New(errs.CodeIndexRange, "index entry for CI %s points at position %d which holds no record", id, position)
		return
	}

	return
}
