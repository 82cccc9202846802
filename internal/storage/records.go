package storage

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/conf"
	"github.com/gostonefire/patientstore/internal/model"
	"github.com/gostonefire/patientstore/record"
	"github.com/rs/zerolog/log"
)

// SaveRecords - Sorts slots in place by CI and writes every slot in use to the record file, truncating the file.
// The n:th written slot ends up at byte offset n * conf.SlotSize.
//   - fileName is the record file path
//   - slots is the in-memory record table, it is reordered even if writing fails
//
// It returns:
//   - written is the number of records written
//   - order is the permutation applied by the sort, see SortSlots
//   - err is an errs.Error with code IO if the file could not be written
func SaveRecords(fileName string, slots []model.Slot) (written int, order []int, err error) {
	order = SortSlots(slots)

	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		err = errs.Wrap(errs.CodeIO, err, "unable to open record file %s for writing", fileName)
		return
	}
	defer func(file *os.File) {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.CodeIO, cerr, "unable to close record file %s", fileName)
		}
	}(file)

	w := bufio.NewWriter(file)
	buf := make([]byte, conf.SlotSize)
	for _, slot := range slots {
		if !slot.InUse() {
			continue
		}

		recordToBytes(slot.Record, buf)
		if _, err = w.Write(buf); err != nil {
			err = errs.Wrap(errs.CodeIO, err, "error while writing record with CI %s", slot.Record.ID)
			return
		}
		log.Debug().Str("ci", slot.Record.ID).Int("position", written).Msg("storage: record saved.")
		written++
	}

	if err = w.Flush(); err != nil {
		err = errs.Wrap(errs.CodeIO, err, "error while flushing record file %s", fileName)
		return
	}

	log.Info().Str("file", fileName).Int("records", written).Msg("storage: records saved.")

	return
}

// LoadRecords - Reads all records from the record file in file order.
//   - fileName is the record file path
//   - capacity is the max number of records accepted
//
// It returns:
//   - records is the loaded records, where records[n] was read from slot n
//   - err is an errs.Error with code IO if the file is missing, unreadable or ends in a partial slot,
//     or with code OutOfRange if the file holds more than capacity records
func LoadRecords(fileName string, capacity int64) (records []record.Record, err error) {
	file, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = errs.Wrap(errs.CodeIO, err, "unable to open record file %s", fileName)
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	r := bufio.NewReader(file)
	buf := make([]byte, conf.SlotSize)
	for {
		_, err = io.ReadFull(r, buf)
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = errs.Wrap(errs.CodeIO, err, "record file %s ends in a partial slot", fileName)
			records = nil
			return
		}
		if err != nil {
			err = errs.Wrap(errs.CodeIO, err, "error while reading record file %s", fileName)
			records = nil
			return
		}

		if int64(len(records)) >= capacity {
			err = errs.New(errs.CodeOutOfRange, "record file %s holds more than %d records", fileName, capacity)
			records = nil
			return
		}

		records = append(records, bytesToRecord(buf))
	}

	log.Info().Str("file", fileName).Int("records", len(records)).Msg("storage: records loaded.")

	return
}

// ReadRecordAt - Reads the record stored in slot position of the record file
//   - fileName is the record file path
//   - position is the slot number
//
// It returns:
//   - r is the record found in the slot
//   - err is an errs.Error with code IO if the file could not be read or the slot lies beyond end of file
func ReadRecordAt(fileName string, position int64) (r record.Record, err error) {
	if position < 0 {
		err = errs.New(errs.CodeIndexRange, "negative slot position %d", position)
		return
	}

	file, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = errs.Wrap(errs.CodeIO, err, "unable to open record file %s", fileName)
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	buf := make([]byte, conf.SlotSize)
	if _, err = file.ReadAt(buf, position*conf.SlotSize); err != nil {
		err = errs.Wrap(errs.CodeIO, err, "unable to read slot %d of record file %s", position, fileName)
		return
	}

	r = bytesToRecord(buf)

	return
}

// SortSlots - Sorts slots in place by CI in ascending byte order using quicksort.
// Slots not in use carry an empty CI and therefore end up first.
//
// It returns:
//   - order is the permutation applied, order[n] is the position the slot now at n held before the sort
func SortSlots(slots []model.Slot) (order []int) {
	order = make([]int, len(slots))
	for i := range order {
		order[i] = i
	}

	if len(slots) < 2 {
		return
	}
	quickSort(slots, order, 0, len(slots)-1)

	return
}

// quickSort - Hoare style partition exchange over slots[left..right], order is swapped along with slots
func quickSort(slots []model.Slot, order []int, left, right int) {
	i, j := left, right
	pivot := slots[left+(right-left)/2].Record.ID

	for i <= j {
		for slots[i].Record.ID < pivot {
			i++
		}
		for slots[j].Record.ID > pivot {
			j--
		}
		if i <= j {
			slots[i], slots[j] = slots[j], slots[i]
			order[i], order[j] = order[j], order[i]
			i++
			j--
		}
	}

	if left < j {
		quickSort(slots, order, left, j)
	}
	if i < right {
		quickSort(slots, order, i, right)
	}
}
