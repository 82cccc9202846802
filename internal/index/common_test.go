//go:build unit

package index

import (
	"testing"

	"github.com/gostonefire/patientstore/errs"
	"github.com/gostonefire/patientstore/internal/hash"
	"github.com/stretchr/testify/assert"
)

type outOfRangeHashAlgorithm struct {
	tableSize int64
}

func (O *outOfRangeHashAlgorithm) SetTableSize(tableSize int64) { O.tableSize = tableSize }
func (O *outOfRangeHashAlgorithm) GetTableSize() int64          { return O.tableSize }
func (O *outOfRangeHashAlgorithm) HashFunc1(_ string) (int64, error) {
	return O.tableSize, nil
}

func TestGetBucketNo(t *testing.T) {
	t.Run("returns bucket from hash algorithm", func(t *testing.T) {
		// Execute
		bucketNo, err := GetBucketNo(hash.NewModuloHashAlgorithm(1000), "00001001")

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(1), bucketNo)
	})

	t.Run("rejects bucket outside table", func(t *testing.T) {
		// Execute
		_, err := GetBucketNo(&outOfRangeHashAlgorithm{tableSize: 10}, "00001001")

		// Check
		assert.ErrorIs(t, err, errs.ErrIndexRange)
	})

	t.Run("propagates key errors", func(t *testing.T) {
		// Execute
		_, err := GetBucketNo(hash.NewModuloHashAlgorithm(1000), "abc")

		// Check
		assert.ErrorIs(t, err, errs.ErrCIFormat)
	})
}

func TestCheckBucketNo(t *testing.T) {
	assert.NoError(t, CheckBucketNo(0, 10))
	assert.NoError(t, CheckBucketNo(9, 10))
	assert.ErrorIs(t, CheckBucketNo(10, 10), errs.ErrIndexRange)
	assert.ErrorIs(t, CheckBucketNo(-1, 10), errs.ErrIndexRange)
}
