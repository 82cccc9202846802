//go:build unit

package linearprobing

import (
	"testing"

	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/hash"
	"github.com/gostonefire/patientstore/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestLPTable_InsertLookup(t *testing.T) {
	t.Run("probes to next bucket on collision", func(t *testing.T) {
		// Prepare
		table := NewLPTable(hash.NewModuloHashAlgorithm(1000))

		// Execute
		first, err := table.Insert("00000001", 0)
		assert.NoError(t, err)
		second, err := table.Insert("00001001", 1)
		assert.NoError(t, err)

		// Check
		assert.Equal(t, int64(1), first)
		assert.Equal(t, int64(2), second)

		position, bucketNo, err := table.Lookup("00001001")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), position)
		assert.Equal(t, int64(2), bucketNo)
	})

	t.Run("wraps around at end of table", func(t *testing.T) {
		// Prepare
		table := NewLPTable(hash.NewModuloHashAlgorithm(1000))
		_, err := table.Insert("00000999", 0)
		assert.NoError(t, err)

		// Execute
		bucketNo, err := table.Insert("00001999", 1)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(0), bucketNo)
	})

	t.Run("updates existing entry past a deleted bucket", func(t *testing.T) {
		// Prepare
		table := NewLPTable(hash.NewModuloHashAlgorithm(1000))
		_, _ = table.Insert("00000001", 0)
		_, _ = table.Insert("00001001", 1)
		assert.NoError(t, table.Remove("00000001"))

		// Execute
		bucketNo, err := table.Insert("00001001", 5)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(2), bucketNo, "no duplicate in deleted bucket")
		assert.Equal(t, []model.IndexEntry{{ID: "00001001", Position: 5}}, table.Entries())
	})

	t.Run("reuses deleted bucket for new entry", func(t *testing.T) {
		// Prepare
		table := NewLPTable(hash.NewModuloHashAlgorithm(1000))
		_, _ = table.Insert("00000001", 0)
		_, _ = table.Insert("00001001", 1)
		assert.NoError(t, table.Remove("00000001"))

		// Execute
		bucketNo, err := table.Insert("00002001", 2)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(1), bucketNo)
	})

	t.Run("reports full table", func(t *testing.T) {
		// Prepare
		table := NewLPTable(hash.NewModuloHashAlgorithm(2))
		_, _ = table.Insert("00000000", 0)
		_, _ = table.Insert("00000001", 1)

		// Execute
		_, err := table.Insert("00000002", 2)

		// Check
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})
}

func TestLPTable_Remove(t *testing.T) {
	t.Run("keeps probe sequence intact", func(t *testing.T) {
		// Prepare
		table := NewLPTable(hash.NewModuloHashAlgorithm(1000))
		_, _ = table.Insert("00000001", 0)
		_, _ = table.Insert("00001001", 1)

		// Execute
		err := table.Remove("00000001")

		// Check
		assert.NoError(t, err)
		_, _, err = table.Lookup("00000001")
		assert.ErrorIs(t, err, errs.ErrNotFound)
		position, _, err := table.Lookup("00001001")
		assert.NoError(t, err, "found past deleted bucket")
		assert.Equal(t, int64(1), position)
	})

	t.Run("reports missing id", func(t *testing.T) {
		// Execute
		err := NewLPTable(hash.NewModuloHashAlgorithm(1000)).Remove("00000001")

		// Check
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestLPTable_Reset(t *testing.T) {
	// Prepare
	table := NewLPTable(hash.NewModuloHashAlgorithm(1000))
	_, _ = table.Insert("00000001", 0)
	_, _ = table.Insert("00001001", 1)
	_ = table.Remove("00000001")

	// Execute
	table.Reset()

	// Check
	assert.Empty(t, table.Entries())
	bucket, err := table.GetBucket(2)
	assert.NoError(t, err)
	assert.Empty(t, bucket)
}
