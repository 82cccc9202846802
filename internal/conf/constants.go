package conf

// Capacity - Default maximum number of slots in the in-memory record table
const Capacity int64 = 100

// BucketCount - Number of buckets in the index table
const BucketCount int64 = 1000

// CILength - Exact number of digits in a CI
const CILength int = 8

// NameLimit - Max name length in bytes
const NameLimit int = 25

// DiagnosisLimit - Max diagnosis length in bytes
const DiagnosisLimit int = 50

// SpecialtyLimit - Max specialty length in bytes
const SpecialtyLimit int = 50

// AppointmentDateLength - Exact length of an appointment date (YYYY-MM-DD)
const AppointmentDateLength int = 10

// RecordFileName - Default name of the binary record file
const RecordFileName string = "patients.bin"

// IndexFileName - Default name of the text index file
const IndexFileName string = "index.dat"

// DataDir - Default directory holding the record and index files
const DataDir string = "data"

// The record file stores one slot per record using the layout of the C patient struct, including its
// alignment padding, so files are interchangeable with it. All integers are little endian int32.

// CIOffset - Slot offset to the NUL terminated CI - 9 bytes
const CIOffset int64 = 0

// CIFieldLength - Length of the CI field including terminator
const CIFieldLength int64 = 9

// NameOffset - Slot offset to the name - NameLimit bytes
const NameOffset int64 = 9

// AgeOffset - Slot offset to the age - 4 bytes
const AgeOffset int64 = 36

// DiagnosisOffset - Slot offset to the diagnosis - DiagnosisLimit bytes
const DiagnosisOffset int64 = 40

// GenderOffset - Slot offset to the gender - 1 byte
const GenderOffset int64 = 90

// DisabilityOffset - Slot offset to the disability flag - 4 bytes
const DisabilityOffset int64 = 92

// SpecialtyOffset - Slot offset to the doctor specialty - SpecialtyLimit bytes
const SpecialtyOffset int64 = 96

// AppointmentDateOffset - Slot offset to the NUL terminated appointment date - 11 bytes
const AppointmentDateOffset int64 = 146

// AppointmentDateFieldLength - Length of the appointment date field including terminator
const AppointmentDateFieldLength int64 = 11

// SlotSize - Length of one record slot in the record file
const SlotSize int64 = 160
