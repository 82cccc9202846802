//go:build integration

package patientstore

import (
	"fmt"
	"testing"

	"github.com/gostonefire/patientstore/crt"
	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/record"
	"github.com/stretchr/testify/assert"
)

func TestStore_Add(t *testing.T) {
	t.Run("add tests for all CRTs", func(t *testing.T) {
		for _, test := range allCRTs {
			t.Run(fmt.Sprintf("adds and gets records for %s", test.crtName), func(t *testing.T) {
				// Prepare
				store := newTestStore(t, test.crt)
				ids := []string{"12345678", "87654321", "11223344"}

				// Execute
				for i, id := range ids {
					position, err := store.Add(newPatient(t, id, "Patient "+id))
					assert.NoError(t, err, "add %s", id)
					assert.Equal(t, int64(i), position, "appended at count")
				}

				// Check
				assert.Equal(t, int64(3), store.Count())
				for _, id := range ids {
					r, bucketNo, err := store.Get(id)
					assert.NoError(t, err, "get %s", id)
					assert.Equal(t, newPatient(t, id, "Patient "+id), r)

					hashed, err := Hash(id)
					assert.NoError(t, err)
					assert.Equal(t, hashed, bucketNo)
				}
			})

			t.Run(fmt.Sprintf("rejects duplicate CI for %s", test.crtName), func(t *testing.T) {
				// Prepare
				store := newTestStore(t, test.crt)
				_, err := store.Add(newPatient(t, "12345678", "First"))
				assert.NoError(t, err)

				// Execute
				_, err = store.Add(newPatient(t, "12345678", "Second"))

				// Check
				assert.ErrorIs(t, err, errs.ErrDuplicate)
				assert.Equal(t, int64(1), store.Count())
				r, _, err := store.Get("12345678")
				assert.NoError(t, err)
				assert.Equal(t, "First", r.Name, "first record kept")
			})

			t.Run(fmt.Sprintf("rejects add at capacity for %s", test.crtName), func(t *testing.T) {
				// Prepare
				storeConf := testConf(t, test.crt)
				storeConf.Capacity = 2
				store, err := New(storeConf)
				assert.NoError(t, err)
				_, err = store.Add(newPatient(t, "00000010", "A"))
				assert.NoError(t, err)
				_, err = store.Add(newPatient(t, "00000020", "B"))
				assert.NoError(t, err)

				// Execute
				_, err = store.Add(newPatient(t, "00000030", "C"))

				// Check
				assert.ErrorIs(t, err, errs.ErrOutOfRange)
				assert.Equal(t, int64(2), store.Count(), "count unchanged")
				_, _, err = store.Get("00000030")
				assert.ErrorIs(t, err, errs.ErrNotFound, "not indexed")
			})

			t.Run(fmt.Sprintf("rejects record without valid CI for %s", test.crtName), func(t *testing.T) {
				// Prepare
				store := newTestStore(t, test.crt)

				// Execute
				_, err := store.Add(record.Record{})

				// Check
				assert.ErrorIs(t, err, errs.ErrCINull)
				assert.Zero(t, store.Count())
			})
		}
	})

	t.Run("colliding CIs under LastWriteWins", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.LastWriteWins)

		// Execute
		_, err := store.Add(newPatient(t, "00000001", "First"))
		assert.NoError(t, err)
		_, err = store.Add(newPatient(t, "00001001", "Second"))
		assert.NoError(t, err)

		// Check
		assert.Equal(t, int64(2), store.Count(), "both records stored")
		_, _, err = store.Get("00000001")
		assert.ErrorIs(t, err, errs.ErrNotFound, "first record unreachable through index")
		r, bucketNo, err := store.Get("00001001")
		assert.NoError(t, err)
		assert.Equal(t, "Second", r.Name)
		assert.Equal(t, int64(1), bucketNo)
	})

	t.Run("colliding CIs under SeparateChaining", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.SeparateChaining)

		// Execute
		_, err := store.Add(newPatient(t, "00000001", "First"))
		assert.NoError(t, err)
		_, err = store.Add(newPatient(t, "00001001", "Second"))
		assert.NoError(t, err)

		// Check
		r, bucketNo, err := store.Get("00000001")
		assert.NoError(t, err)
		assert.Equal(t, "First", r.Name)
		assert.Equal(t, int64(1), bucketNo)
		r, bucketNo, err = store.Get("00001001")
		assert.NoError(t, err)
		assert.Equal(t, "Second", r.Name)
		assert.Equal(t, int64(1), bucketNo)

		_, err = store.Add(newPatient(t, "00001001", "Again"))
		assert.ErrorIs(t, err, errs.ErrDuplicate, "chained CI detected as duplicate")
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("update tests for all CRTs", func(t *testing.T) {
		for _, test := range allCRTs {
			t.Run(fmt.Sprintf("updates an existing record for %s", test.crtName), func(t *testing.T) {
				// Prepare
				store := newTestStore(t, test.crt)
				_, err := store.Add(newPatient(t, "12345678", "Before"))
				assert.NoError(t, err)

				// Execute
				err = store.Update("12345678", newPatient(t, "12345678", "After"))

				// Check
				assert.NoError(t, err, "update record")
				r, _, err := store.Get("12345678")
				assert.NoError(t, err)
				assert.Equal(t, "After", r.Name)
				assert.Equal(t, int64(1), store.Count())
			})

			t.Run(fmt.Sprintf("throws correct error when CI is not found for %s", test.crtName), func(t *testing.T) {
				// Prepare
				store := newTestStore(t, test.crt)

				// Execute
				err := store.Update("12345678", newPatient(t, "12345678", "After"))

				// Check
				assert.ErrorIs(t, err, errs.ErrNotFound)
				assert.Zero(t, store.Count())
			})

			t.Run(fmt.Sprintf("refuses to change the CI for %s", test.crtName), func(t *testing.T) {
				// Prepare
				store := newTestStore(t, test.crt)
				_, err := store.Add(newPatient(t, "12345678", "Before"))
				assert.NoError(t, err)

				// Execute
				err = store.Update("12345678", newPatient(t, "87654321", "After"))

				// Check
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
				r, _, err := store.Get("12345678")
				assert.NoError(t, err)
				assert.Equal(t, "Before", r.Name, "record unchanged")
			})
		}
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("delete tests for all CRTs", func(t *testing.T) {
		for _, test := range allCRTs {
			t.Run(fmt.Sprintf("deletes records for %s", test.crtName), func(t *testing.T) {
				// Prepare
				store := newTestStore(t, test.crt)
				_, err := store.Add(newPatient(t, "12345678", "A"))
				assert.NoError(t, err)
				_, err = store.Add(newPatient(t, "87654321", "B"))
				assert.NoError(t, err)

				// Execute
				err = store.Delete("12345678")

				// Check
				assert.NoError(t, err, "delete record")
				_, _, err = store.Get("12345678")
				assert.ErrorIs(t, err, errs.ErrNotFound, "deleted record not found")
				assert.Equal(t, int64(1), store.Count())
				assert.Equal(t, []string{"87654321"}, ids(store.Records()))

				err = store.Delete("12345678")
				assert.ErrorIs(t, err, errs.ErrNotFound, "second delete")

				position, err := store.Add(newPatient(t, "12345678", "A again"))
				assert.NoError(t, err, "re-add after delete")
				assert.Equal(t, int64(2), position, "deleted slot stays consumed until compaction")
			})
		}
	})

	t.Run("keeps colliding record under SeparateChaining", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.SeparateChaining)
		_, err := store.Add(newPatient(t, "00000001", "First"))
		assert.NoError(t, err)
		_, err = store.Add(newPatient(t, "00001001", "Second"))
		assert.NoError(t, err)

		// Execute
		err = store.Delete("00000001")

		// Check
		assert.NoError(t, err)
		r, _, err := store.Get("00001001")
		assert.NoError(t, err, "chained record promoted")
		assert.Equal(t, "Second", r.Name)
	})
}

func TestStore_ScheduleAppointment(t *testing.T) {
	t.Run("sets a new date", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.LastWriteWins)
		_, err := store.Add(newPatient(t, "12345678", "A"))
		assert.NoError(t, err)

		// Execute
		err = store.ScheduleAppointment("12345678", "2024-01-31")

		// Check
		assert.NoError(t, err)
		r, _, err := store.Get("12345678")
		assert.NoError(t, err)
		assert.Equal(t, "2024-01-31", r.AppointmentDate)
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.LastWriteWins)
		_, err := store.Add(newPatient(t, "12345678", "A"))
		assert.NoError(t, err)

		// Execute
		err = store.ScheduleAppointment("12345678", "2024-1-31")

		// Check
		assert.ErrorIs(t, err, errs.ErrAppointmentDateFormat)
		r, _, err := store.Get("12345678")
		assert.NoError(t, err)
		assert.Equal(t, "2023-03-10", r.AppointmentDate, "date unchanged")
	})

	t.Run("unknown CI", func(t *testing.T) {
		// Execute
		err := newTestStore(t, crt.LastWriteWins).ScheduleAppointment("12345678", "2024-01-31")

		// Check
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown CI reported before invalid date", func(t *testing.T) {
		// Execute
		err := newTestStore(t, crt.LastWriteWins).ScheduleAppointment("99999999", "bad")

		// Check
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestStore_IndexInsert(t *testing.T) {
	t.Run("re-links a record lost to a collision", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.LastWriteWins)
		_, err := store.Add(newPatient(t, "00000001", "First"))
		assert.NoError(t, err)
		_, err = store.Add(newPatient(t, "00001001", "Second"))
		assert.NoError(t, err)

		// Execute
		bucketNo, err := store.IndexInsert("00000001", 0)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(1), bucketNo)
		r, _, err := store.Get("00000001")
		assert.NoError(t, err)
		assert.Equal(t, "First", r.Name)
	})

	t.Run("rejects position without record", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.LastWriteWins)

		// Execute
		_, err := store.IndexInsert("12345678", 0)

		// Check
		assert.ErrorIs(t, err, errs.ErrIndexRange)
	})
}

func TestStore_Stat(t *testing.T) {
	t.Run("produces statistics with distribution", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.SeparateChaining)
		for _, id := range []string{"00000001", "00001001", "00002001", "00000002"} {
			_, err := store.Add(newPatient(t, id, "P"))
			assert.NoError(t, err)
		}

		// Execute
		stat, err := store.Stat(true)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(4), stat.Entries)
		assert.Equal(t, int64(2), stat.BucketEntries)
		assert.Equal(t, int64(2), stat.OverflowEntries)
		assert.Len(t, stat.BucketDistribution, 1000)
		assert.Equal(t, int64(3), stat.BucketDistribution[1])
		assert.Equal(t, int64(1), stat.BucketDistribution[2])
	})

	t.Run("produces statistics without distribution", func(t *testing.T) {
		// Prepare
		store := newTestStore(t, crt.LastWriteWins)
		_, err := store.Add(newPatient(t, "00000001", "P"))
		assert.NoError(t, err)

		// Execute
		stat, err := store.Stat(false)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(1), stat.Entries)
		assert.Zero(t, stat.OverflowEntries)
		assert.Nil(t, stat.BucketDistribution)
	})
}

func TestHash(t *testing.T) {
	bucketNo, err := Hash("12345678")
	assert.NoError(t, err)
	assert.Equal(t, int64(678), bucketNo)

	key, err := ParseKey("00000042")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), key)

	_, err = Hash("1234567x")
	assert.ErrorIs(t, err, errs.ErrCIFormat)
}

func ids(records []record.Record) (result []string) {
	for _, r := range records {
		result = append(result, r.ID)
	}

	return
}
