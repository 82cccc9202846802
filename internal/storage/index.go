package storage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/model"
	"github.com/rs/zerolog/log"
)

// SaveIndex - Writes one line per index entry to the index file, truncating the file.
// Each line has the form |<CI>|<position>|.
//   - fileName is the index file path
//   - entries is the index entries in use
//
// It returns:
//   - written is the number of lines written
//   - err is an errs.Error with code IO if the file could not be written
func SaveIndex(fileName string, entries []model.IndexEntry) (written int, err error) {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		err = errs.Wrap(errs.CodeIO, err, "unable to open index file %s for writing", fileName)
		return
	}
	defer func(file *os.File) {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.CodeIO, cerr, "unable to close index file %s", fileName)
		}
	}(file)

	w := bufio.NewWriter(file)
	for _, entry := range entries {
		if entry.IsEmpty() {
			continue
		}
		if _, err = fmt.Fprintf(w, "|%s|%d|\n", entry.ID, entry.Position); err != nil {
			err = errs.Wrap(errs.CodeIO, err, "error while writing index entry for CI %s", entry.ID)
			return
		}
		written++
	}

	if err = w.Flush(); err != nil {
		err = errs.Wrap(errs.CodeIO, err, "error while flushing index file %s", fileName)
		return
	}

	log.Info().Str("file", fileName).Int("entries", written).Msg("storage: index saved.")

	return
}

// LoadIndex - Reads the index file line by line and hands every entry to insert. Blank lines are skipped,
// loading stops at the first failing line.
//   - fileName is the index file path
//   - capacity is the exclusive upper bound for positions
//   - insert is called once per entry in file order
//
// It returns:
//   - loaded is the number of entries handed to insert without error
//   - err is an errs.Error with code IO if the file is missing, ParseLine for a malformed line, IndexRange for a
//     position not below capacity, or whatever insert returned
func LoadIndex(fileName string, capacity int64, insert func(id string, position int64) error) (loaded int, err error) {
	file, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = errs.Wrap(errs.CodeIO, err, "unable to open index file %s", fileName)
		return
	}
	defer func(file *os.File) { _ = file.Close() }(file)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var id string
		var position int64
		id, position, err = ParseIndexLine(line)
		if err != nil {
			err = errs.Wrap(errs.CodeParseLine, err, "line %d of index file %s", lineNo, fileName)
			return
		}

		if position >= capacity {
			err = errs.New(errs.CodeIndexRange, "line %d of index file %s: position %d not below capacity %d", lineNo, fileName, position, capacity)
			return
		}

		if err = insert(id, position); err != nil {
			return
		}
		loaded++
	}

	if err = scanner.Err(); err != nil {
		err = errs.Wrap(errs.CodeParseLine, err, "error while reading index file %s", fileName)
		return
	}

	log.Info().Str("file", fileName).Int("entries", loaded).Msg("storage: index loaded.")

	return
}

// ParseIndexLine - Parses a line of the form |<CI>|<position>| where position is a non-negative integer
func ParseIndexLine(line string) (id string, position int64, err error) {
	if len(line) < 2 || line[0] != '|' || line[len(line)-1] != '|' {
		err = errs.New(errs.CodeParseLine, "malformed index line %q", line)
		return
	}

	fields := strings.Split(line[1:len(line)-1], "|")
	if len(fields) != 2 || fields[0] == "" {
		err = errs.New(errs.CodeParseLine, "malformed index line %q", line)
		return
	}

	p, perr := strconv.ParseUint(fields[1], 10, 63)
	if perr != nil {
		err = errs.Wrap(errs.CodeParseLine, perr, "malformed position in index line %q", line)
		return
	}

	id = fields[0]
	position = int64(p)

	return
}
