package record

import (
	"math"

	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/conf"
)

// Gender - Patient gender as stored in the record file
type Gender byte

const (
	Male   Gender = 'M'
	Female Gender = 'F'
)

// String - Returns Male, Female or Unknown
func (G Gender) String() string {
	switch G {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Unknown"
	}
}

// Record - A validated patient record. Records should only be created through New.
type Record struct {
	ID              string
	Name            string
	Age             int
	Diagnosis       string
	Gender          Gender
	Disability      bool
	Specialty       string
	AppointmentDate string
}

// Fields - Raw field values as received from a caller. An empty string stands for a missing value and
// Disability is the raw boolean-valued integer (0 or 1).
type Fields struct {
	ID              string
	Name            string
	Age             int
	Diagnosis       string
	Gender          byte
	Disability      int
	Specialty       string
	AppointmentDate string
}

// New - Constructs a Record from raw fields. Rules are checked in field order and the first violated rule is
// returned as an errs.Error carrying the code for that rule; no partial record is returned on failure.
//   - fields is the raw input
//
// It returns:
//   - record is the constructed record
//   - err is nil or an errs.Error
func New(fields Fields) (record Record, err error) {
	if err = ValidateCI(fields.ID); err != nil {
		return
	}

	if err = checkText(fields.Name, conf.NameLimit, errs.CodeNameNull, errs.CodeNameTooLong, "name"); err != nil {
		return
	}

	if fields.Age < 0 || fields.Age > math.MaxInt32 {
		err = errs.New(errs.CodeAgeInvalid, "invalid age %d (must be >= 0)", fields.Age)
		return
	}

	if err = checkText(fields.Diagnosis, conf.DiagnosisLimit, errs.CodeDiagnosisNull, errs.CodeDiagnosisTooLong, "diagnosis"); err != nil {
		return
	}

	if fields.Gender != byte(Male) && fields.Gender != byte(Female) {
		err = errs.New(errs.CodeGenderInvalid, "invalid gender %q (must be 'M' or 'F')", fields.Gender)
		return
	}

	if fields.Disability != 0 && fields.Disability != 1 {
		err = errs.New(errs.CodeInvalidArgument, "disability must be 0 or 1, got %d", fields.Disability)
		return
	}

	if err = checkText(fields.Specialty, conf.SpecialtyLimit, errs.CodeSpecialtyNull, errs.CodeSpecialtyTooLong, "specialty"); err != nil {
		return
	}

	if err = ValidateAppointmentDate(fields.AppointmentDate); err != nil {
		return
	}

	record = Record{
		ID:              fields.ID,
		Name:            fields.Name,
		Age:             fields.Age,
		Diagnosis:       fields.Diagnosis,
		Gender:          Gender(fields.Gender),
		Disability:      fields.Disability == 1,
		Specialty:       fields.Specialty,
		AppointmentDate: fields.AppointmentDate,
	}

	return
}

// ValidateCI - Returns nil if ci is exactly 8 ASCII digits
func ValidateCI(ci string) (err error) {
	if ci == "" {
		return errs.New(errs.CodeCINull, "CI is missing")
	}
	if len(ci) != conf.CILength {
		return errs.New(errs.CodeCIFormat, "CI %q must be exactly %d digits", ci, conf.CILength)
	}
	for i := 0; i < len(ci); i++ {
		if ci[i] < '0' || ci[i] > '9' {
			return errs.New(errs.CodeCIFormat, "CI %q must be exactly %d digits", ci, conf.CILength)
		}
	}

	return
}

// ValidateAppointmentDate - Returns nil if date is present and exactly 10 characters long.
// Calendar validity is not checked.
func ValidateAppointmentDate(date string) (err error) {
	if date == "" {
		return errs.New(errs.CodeAppointmentDateNull, "appointment date is missing")
	}
	if len(date) != conf.AppointmentDateLength {
		return errs.New(errs.CodeAppointmentDateFormat, "appointment date %q must be YYYY-MM-DD", date)
	}

	return
}

// Fields - Returns the raw fields of the record, New(r.Fields()) reproduces r
func (R Record) Fields() Fields {
	f := Fields{
		ID:              R.ID,
		Name:            R.Name,
		Age:             R.Age,
		Diagnosis:       R.Diagnosis,
		Gender:          byte(R.Gender),
		Specialty:       R.Specialty,
		AppointmentDate: R.AppointmentDate,
	}
	if R.Disability {
		f.Disability = 1
	}

	return f
}

func checkText(value string, limit int, nullCode, tooLongCode errs.Code, field string) error {
	if value == "" {
		return errs.New(nullCode, "%s is missing", field)
	}
	if len(value) > limit {
		return errs.New(tooLongCode, "%s is too long (%d bytes, max %d)", field, len(value), limit)
	}

	return nil
}
