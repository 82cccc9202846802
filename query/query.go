package query

import "github.com/gostonefire/patientstore/record"

// Filter - Returns the records for which keep returns true, preserving order
func Filter(records []record.Record, keep func(r record.Record) bool) (result []record.Record) {
	result = make([]record.Record, 0)
	for _, r := range records {
		if keep(r) {
			result = append(result, r)
		}
	}

	return
}

// Disabled - Returns the patients with a disability
func Disabled(records []record.Record) []record.Record {
	return Filter(records, func(r record.Record) bool { return r.Disability })
}

// ByAppointmentDate - Returns the patients with an appointment on date (YYYY-MM-DD)
func ByAppointmentDate(records []record.Record, date string) []record.Record {
	return Filter(records, func(r record.Record) bool { return r.AppointmentDate == date })
}

// BySpecialty - Returns the patients assigned to a doctor specialty, compared case sensitive
func BySpecialty(records []record.Record, specialty string) []record.Record {
	return Filter(records, func(r record.Record) bool { return r.Specialty == specialty })
}

// Female - Returns the female patients
func Female(records []record.Record) []record.Record {
	return Filter(records, func(r record.Record) bool { return r.Gender == record.Female })
}

// Male - Returns the male patients
func Male(records []record.Record) []record.Record {
	return Filter(records, func(r record.Record) bool { return r.Gender == record.Male })
}

// UnderAge - Returns the patients younger than ageLimit
func UnderAge(records []record.Record, ageLimit int) []record.Record {
	return Filter(records, func(r record.Record) bool { return r.Age < ageLimit })
}
