package patientstore

import (
	"github.com/gostonefire/patientstore/crt"
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/hashfunc"
	"github.com/gostonefire/patientstore/internal/conf"
)

// Conf - Configuration of a Store
//   - Dir is the directory holding the record file and the index file, it is created if missing
//   - RecordFileName is the name of the binary record file within Dir
//   - IndexFileName is the name of the text index file within Dir
//   - Capacity is the max number of slots in the in-memory record table
//   - CollisionResolutionTechnique is one of the crt constants
//   - HashAlgorithm is an optional custom hash algorithm, nil gives CI modulo number of buckets
type Conf struct {
	Dir                          string
	RecordFileName               string
	IndexFileName                string
	Capacity                     int64
	CollisionResolutionTechnique int
	HashAlgorithm                hashfunc.HashAlgorithm
}

// DefaultConf - Returns a Conf matching the file names and limits of the record format
func DefaultConf() Conf {
	return Conf{
		Dir:                          conf.DataDir,
		RecordFileName:               conf.RecordFileName,
		IndexFileName:                conf.IndexFileName,
		Capacity:                     conf.Capacity,
		CollisionResolutionTechnique: crt.LastWriteWins,
	}
}

// validate - Checks that a Conf can be used to create a Store
func (C Conf) validate() (err error) {
	if C.Capacity <= 0 {
		return errs.New(errs.CodeInvalidArgument, "capacity must be a positive value higher than 0 (zero)")
	}

	if C.RecordFileName == "" || C.IndexFileName == "" {
		return errs.New(errs.CodeInvalidArgument, "record file name and index file name can not be empty")
	}

	if !crt.Valid(C.CollisionResolutionTechnique) {
		return errs.New(errs.CodeInvalidArgument, "unknown collision resolution technique %d", C.CollisionResolutionTechnique)
	}

	if C.HashAlgorithm != nil && C.HashAlgorithm.GetTableSize() <= 0 {
		return errs.New(errs.CodeInvalidArgument, "custom hash algorithm must have a table size higher than 0 (zero)")
	}

	return
}
