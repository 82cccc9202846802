package patientstore

import (
	"github.com/google/uuid"
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/model"
	"github.com/gostonefire/patientstore/internal/storage"
	"github.com/rs/zerolog/log"
)

// SyncInfo - Result of a SyncAll
//   - SyncID identifies the sync in log output
//   - Records is the number of records written to the record file
//   - IndexEntries is the number of lines written to the index file
type SyncInfo struct {
	SyncID       uuid.UUID
	Records      int
	IndexEntries int
}

// SaveRecords - Sorts the in-memory table by CI and writes all live records to the record file.
// Afterwards the table is compacted into file order and every index entry is moved to the new position of its
// record, so positions in memory, in the index and in the record file agree. The index keeps the entries it had,
// which record wins a collided bucket does not change. Compaction happens even if writing fails.
//
// It returns:
//   - written is the number of records written
//   - err is an errs.Error with code IO if the file could not be written
func (S *Store) SaveRecords() (written int, err error) {
	written, order, err := storage.SaveRecords(S.recordFileName, S.slots)

	positions := S.compact(order)
	if rerr := S.remapIndex(positions); rerr != nil && err == nil {
		err = rerr
	}

	return
}

// LoadRecords - Replaces the in-memory table with the records of the record file. The index is left as is,
// follow up with LoadIndex or RebuildIndex. On failure the store is left unchanged.
//
// It returns:
//   - loaded is the number of records loaded
//   - err is an errs.Error with code IO or OutOfRange
func (S *Store) LoadRecords() (loaded int, err error) {
	records, err := storage.LoadRecords(S.recordFileName, S.capacity)
	if err != nil {
		return
	}

	slots := make([]model.Slot, 0, S.capacity)
	for _, r := range records {
		slots = append(slots, model.Slot{State: model.SlotOccupied, Record: r})
	}
	S.slots = slots
	loaded = len(records)

	return
}

// SaveIndex - Writes all index entries to the index file
//
// It returns:
//   - written is the number of entries written
//   - err is an errs.Error with code IO if the file could not be written
func (S *Store) SaveIndex() (written int, err error) {
	return storage.SaveIndex(S.indexFileName, S.index.Entries())
}

// LoadIndex - Clears the index table and replays every entry of the index file through the collision resolution
// technique in use. On failure the index holds the entries loaded before the failing line.
//
// It returns:
//   - loaded is the number of entries loaded
//   - err is an errs.Error with code IO, ParseLine, IndexRange or a CI error
func (S *Store) LoadIndex() (loaded int, err error) {
	S.index.Reset()

	return storage.LoadIndex(S.indexFileName, S.capacity, func(id string, position int64) (err error) {
		_, err = S.index.Insert(id, position)
		return
	})
}

// SyncAll - Calls SaveRecords followed by SaveIndex. The first failure is returned immediately and nothing is
// rolled back, so after a failed SaveIndex the record file is newer than the index file.
//
// It returns:
//   - syncInfo is a SyncInfo struct with the sync id and number of records and entries written
//   - err is an errs.Error with code IO if any of the files could not be written
func (S *Store) SyncAll() (syncInfo SyncInfo, err error) {
	syncInfo.SyncID = uuid.New()
	logger := log.With().Str("syncId", syncInfo.SyncID.String()).Logger()

	logger.Info().Int64("records", S.Count()).Msg("store: sync started.")

	syncInfo.Records, err = S.SaveRecords()
	if err != nil {
		logger.Error().Err(err).Msg("store: sync failed while saving records.")
		return
	}

	syncInfo.IndexEntries, err = S.SaveIndex()
	if err != nil {
		logger.Error().Err(err).Msg("store: sync failed while saving index.")
		return
	}

	logger.Info().
		Int("records", syncInfo.Records).
		Int("entries", syncInfo.IndexEntries).
		Msg("store: sync completed.")

	return
}

// RebuildIndex - Clears the index table and inserts an entry for every live record at its current position
func (S *Store) RebuildIndex() (err error) {
	S.index.Reset()
	for i, slot := range S.slots {
		if !slot.InUse() {
			continue
		}
		if _, err = S.index.Insert(slot.Record.ID, int64(i)); err != nil {
			return
		}
	}

	return
}

// compact - Drops slots that are not in use, keeping the order of the remaining slots.
//   - order is the permutation applied by the last sort, order[n] is the previous position of slot n
//
// It returns:
//   - positions maps the previous position of every live slot to its position after compaction
func (S *Store) compact(order []int) (positions map[int64]int64) {
	positions = make(map[int64]int64, len(S.slots))
	live := S.slots[:0]
	for i, slot := range S.slots {
		if slot.InUse() {
			positions[int64(order[i])] = int64(len(live))
			live = append(live, slot)
		}
	}
	for i := len(live); i < len(S.slots); i++ {
		S.slots[i] = model.Slot{}
	}
	S.slots = live

	return
}

// remapIndex - Re-inserts every index entry at the new position of its record. Entries whose record is gone are dropped.
func (S *Store) remapIndex(positions map[int64]int64) (err error) {
	entries := S.index.Entries()
	S.index.Reset()

	for _, entry := range entries {
		position, ok := positions[entry.Position]
		if !ok {
			log.Debug().Str("ci", entry.ID).Int64("position", entry.Position).Msg("store: dropped index entry without record.")
			continue
		}
		if _, err = S.index.Insert(entry.ID, position); err != nil {
			return
		}
	}

	return
}

// verifyIndex - Checks that every index entry points at a live slot holding the same CI
func (S *Store) verifyIndex() (err error) {
	for _, entry := range S.index.Entries() {
		if entry.Position >= int64(len(S.slots)) || !S.slots[entry.Position].InUse() {
			return errs.New(errs.CodeIndexRange, "index entry for CI %s points at position %d beyond the %d loaded records", entry.ID, entry.Position, len(S.slots))
		}
		if held := S.slots[entry.Position].Record.ID; held != entry.ID {
			return errs.New(errs.CodeInvalidArgument, "index entry for CI %s points at position %d holding CI %s", entry.ID, entry.Position, held)
		}
	}

	return
}
