package storage

import (
	"encoding/binary"

	"github.com/gostonefire/patientstore/internal/conf"
	"github.com/gostonefire/patientstore/internal/utils"
	"github.com/gostonefire/patientstore/record"
)

// field - Returns the sub slice of a slot holding a fixed width field
func field(buf []byte, offset, length int64) []byte {
	return buf[offset : offset+length]
}

// recordToBytes - Converts a Record to its slot layout in buf, buf must be at least conf.SlotSize long.
// Padding bytes are zeroed.
func recordToBytes(r record.Record, buf []byte) {
	for i := int64(0); i < conf.SlotSize; i++ {
		buf[i] = 0
	}

	var disability uint32
	if r.Disability {
		disability = 1
	}

	_ = utils.PutCString(field(buf, conf.CIOffset, conf.CIFieldLength), r.ID)
	_ = utils.PutCString(field(buf, conf.NameOffset, int64(conf.NameLimit)), r.Name)
	binary.LittleEndian.PutUint32(buf[conf.AgeOffset:], uint32(int32(r.Age)))
	_ = utils.PutCString(field(buf, conf.DiagnosisOffset, int64(conf.DiagnosisLimit)), r.Diagnosis)
	buf[conf.GenderOffset] = byte(r.Gender)
	binary.LittleEndian.PutUint32(buf[conf.DisabilityOffset:], disability)
	_ = utils.PutCString(field(buf, conf.SpecialtyOffset, int64(conf.SpecialtyLimit)), r.Specialty)
	_ = utils.PutCString(field(buf, conf.AppointmentDateOffset, conf.AppointmentDateFieldLength), r.AppointmentDate)
}

// bytesToRecord - Converts a slot of raw data to a Record
func bytesToRecord(buf []byte) (r record.Record) {
	r = record.Record{
		ID:              utils.CString(field(buf, conf.CIOffset, conf.CIFieldLength)),
		Name:            utils.CString(field(buf, conf.NameOffset, int64(conf.NameLimit))),
		Age:             int(int32(binary.LittleEndian.Uint32(buf[conf.AgeOffset:]))),
		Diagnosis:       utils.CString(field(buf, conf.DiagnosisOffset, int64(conf.DiagnosisLimit))),
		Gender:          record.Gender(buf[conf.GenderOffset]),
		Disability:      binary.LittleEndian.Uint32(buf[conf.DisabilityOffset:]) != 0,
		Specialty:       utils.CString(field(buf, conf.SpecialtyOffset, int64(conf.SpecialtyLimit))),
		AppointmentDate: utils.CString(field(buf, conf.AppointmentDateOffset, conf.AppointmentDateFieldLength)),
	}

	return
}
