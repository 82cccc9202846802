package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gostonefire/patientstore/errs"
	"github.com/rs/zerolog/log"
)

// GetRecordFileName - Returns the record file path given the data directory and the record file name
func GetRecordFileName(dir, name string) (fileName string) {
	return filepath.Join(dir, name)
}

// GetIndexFileName - Returns the index file path given the data directory and the index file name
func GetIndexFileName(dir, name string) (fileName string) {
	return filepath.Join(dir, name)
}

// CreateDirectory - Creates the data directory, and any parents, if it does not exist
func CreateDirectory(dir string) (err error) {
	if dir == "" {
		return
	}

	if err = os.MkdirAll(dir, 0755); err != nil {
		err = errs.Wrap(errs.CodeIO, err, "unable to create data directory %s", dir)
	}

	return
}

// RemoveFiles - Removes the given files, files that do not exist are ignored
func RemoveFiles(fileNames ...string) (err error) {
	for _, fileName := range fileNames {
		err = os.Remove(fileName)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errs.Wrap(errs.CodeIO, err, "error while removing file %s", fileName)
			}
			err = nil
			continue
		}
		log.Debug().Str("file", fileName).Msg("storage: removed file.")
	}

	return
}
