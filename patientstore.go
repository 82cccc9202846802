package patientstore

import (
	"github.com/gostonefire/patientstore/crt"
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/hashfunc"
	"github.com/gostonefire/patientstore/internal/conf"
	"github.com/gostonefire/patientstore/internal/hash"
	"github.com/gostonefire/patientstore/internal/index/lastwritewins"
	"github.com/gostonefire/patientstore/internal/index/linearprobing"
	"github.com/gostonefire/patientstore/internal/index/separatechaining"
	"github.com/gostonefire/patientstore/internal/model"
	"github.com/gostonefire/patientstore/internal/storage"
	"github.com/rs/zerolog/log"
)

// IndexManagement - Interface for any index table implementation
type IndexManagement interface {
	Insert(id string, position int64) (bucketNo int64, err error)
	Lookup(id string) (position, bucketNo int64, err error)
	Remove(id string) (err error)
	GetBucket(bucketNo int64) (entries []model.IndexEntry, err error)
	Entries() (entries []model.IndexEntry)
	Reset()
	GetTableSize() int64
}

// StoreInfo - Information structure containing some information about the store
//   - Capacity is the max number of slots in the in-memory record table
//   - Records is the number of live records
//   - IndexEntries is the number of entries in the index table
//   - NumberOfBuckets is the number of buckets in the index table
//   - CollisionResolutionTechnique is the crt constant in use
//   - RecordFileName is the path of the record file
//   - IndexFileName is the path of the index file
type StoreInfo struct {
	Capacity                     int64
	Records                      int64
	IndexEntries                 int64
	NumberOfBuckets              int64
	CollisionResolutionTechnique int
	RecordFileName               string
	IndexFileName                string
}

// IndexStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of index entries
//   - BucketEntries is the number of entries stored as bucket heads
//   - OverflowEntries is the number of entries that has ended up in a bucket chain
//   - BucketDistribution is the number of entries stored in each bucket
type IndexStat struct {
	Entries            int64
	BucketEntries      int64
	OverflowEntries    int64
	BucketDistribution []int64
}

// Store - The main implementation struct, an in-memory record table with a hash index and the two files it
// synchronizes with. A Store is not safe for concurrent use.
type Store struct {
	index          IndexManagement
	hashAlgorithm  hashfunc.HashAlgorithm
	slots          []model.Slot
	capacity       int64
	crt            int
	recordFileName string
	indexFileName  string
}

// New - Returns a new, empty, Store. No files are read, the data directory is created if it does not exist.
//   - storeConf is the configuration, use DefaultConf for the defaults
//
// It returns:
//   - store is a pointer to a Store struct
//   - err is an errs.Error with code InvalidArgument for a bad configuration or IO if the directory could not be created
func New(storeConf Conf) (store *Store, err error) {
	if err = storeConf.validate(); err != nil {
		return
	}

	if err = storage.CreateDirectory(storeConf.Dir); err != nil {
		return
	}

	hashAlgorithm := storeConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewModuloHashAlgorithm(conf.BucketCount)
	}

	store = &Store{
		index:          newIndex(storeConf.CollisionResolutionTechnique, hashAlgorithm),
		hashAlgorithm:  hashAlgorithm,
		slots:          make([]model.Slot, 0, storeConf.Capacity),
		capacity:       storeConf.Capacity,
		crt:            storeConf.CollisionResolutionTechnique,
		recordFileName: storage.GetRecordFileName(storeConf.Dir, storeConf.RecordFileName),
		indexFileName:  storage.GetIndexFileName(storeConf.Dir, storeConf.IndexFileName),
	}

	return
}

// Open - Returns a Store loaded from existing record and index files. Every index entry is checked against the
// loaded records, so files from different syncs are detected.
//   - storeConf is the configuration, it must use the same hash algorithm the files were written with
//
// It returns:
//   - store is a pointer to a Store struct
//   - storeInfo is a StoreInfo struct with information about the opened store
//   - err is an errs.Error, IO if any of the files are missing
func Open(storeConf Conf) (store *Store, storeInfo StoreInfo, err error) {
	s, err := New(storeConf)
	if err != nil {
		return
	}

	if _, err = s.LoadRecords(); err != nil {
		return
	}

	if _, err = s.LoadIndex(); err != nil {
		return
	}

	if err = s.verifyIndex(); err != nil {
		return
	}

	store = s
	storeInfo = s.Info()

	log.Info().
		Str("file", store.recordFileName).
		Int64("records", storeInfo.Records).
		Int64("entries", storeInfo.IndexEntries).
		Str("crt", crt.Name(store.crt)).
		Msg("store: opened.")

	return
}

// Info - Returns information about the store
func (S *Store) Info() (storeInfo StoreInfo) {
	storeInfo = StoreInfo{
		Capacity:                     S.capacity,
		Records:                      S.Count(),
		IndexEntries:                 int64(len(S.index.Entries())),
		NumberOfBuckets:              S.index.GetTableSize(),
		CollisionResolutionTechnique: S.crt,
		RecordFileName:               S.recordFileName,
		IndexFileName:                S.indexFileName,
	}

	return
}

// RemoveFiles - Removes the record file and the index file if they exist
func (S *Store) RemoveFiles() (err error) {
	return storage.RemoveFiles(S.recordFileName, S.indexFileName)
}

// ReorgIndex - Replaces the index table by one using another collision resolution technique and rebuilds it
// from the live records.
//   - technique is one of the crt constants
func (S *Store) ReorgIndex(technique int) (err error) {
	if !crt.Valid(technique) {
		return errs.New(errs.CodeInvalidArgument, "unknown collision resolution technique %d", technique)
	}

	previous := S.index
	S.index = newIndex(technique, S.hashAlgorithm)
	if err = S.RebuildIndex(); err != nil {
		S.index = previous
		return
	}

	log.Info().Str("from", crt.Name(S.crt)).Str("to", crt.Name(technique)).Msg("store: index reorganized.")
	S.crt = technique

	return
}

// newIndex - Returns an index table for the technique
func newIndex(technique int, hashAlgorithm hashfunc.HashAlgorithm) IndexManagement {
	switch technique {
	case crt.SeparateChaining:
		return separatechaining.NewSCTable(hashAlgorithm)
	case crt.LinearProbing:
		return linearprobing.NewLPTable(hashAlgorithm)
	default:
		return lastwritewins.NewLWWTable(hashAlgorithm)
	}
}
