package model

import "github.com/gostonefire/patientstore/record"

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot holding a live record
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot whose record was deleted, the slot stays consumed until the table is compacted
const SlotDeleted uint8 = 2

// Slot - Represents one position in the in-memory record table
type Slot struct {
	State  uint8
	Record record.Record
}

// InUse - Returns true if the slot holds a live record
func (S Slot) InUse() bool {
	return S.State == SlotOccupied
}

// IndexEntry - Represents one entry in the index table
//   - ID is a copy of the owning record's CI, an empty ID marks an unused entry
//   - Position is the slot number of the record in the in-memory table and the record file
//   - Next is the collision link, zero means end of chain, otherwise the 1-based overflow slot number
type IndexEntry struct {
	ID       string
	Position int64
	Next     int64
}

// IsEmpty - Returns true if the entry is not in use
func (I IndexEntry) IsEmpty() bool {
	return I.ID == ""
}

// EntryEmpty - State of an open addressing bucket that has never been in use, it ends every probe sequence
const EntryEmpty uint8 = 0

// EntryOccupied - State of an open addressing bucket holding an entry
const EntryOccupied uint8 = 1

// EntryDeleted - State of an open addressing bucket whose entry was removed, probing continues past it
const EntryDeleted uint8 = 2
