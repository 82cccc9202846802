//go:build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCString(t *testing.T) {
	t.Run("stops at first NUL", func(t *testing.T) {
		assert.Equal(t, "abc", CString([]byte{'a', 'b', 'c', 0, 'x', 0}))
		assert.Equal(t, "", CString([]byte{0, 'a'}))
	})

	t.Run("returns full field without terminator", func(t *testing.T) {
		assert.Equal(t, "abcd", CString([]byte("abcd")))
	})
}

func TestPutCString(t *testing.T) {
	t.Run("pads with NUL", func(t *testing.T) {
		// Prepare
		field := []byte{'x', 'x', 'x', 'x', 'x'}

		// Execute
		n := PutCString(field, "ab")

		// Check
		assert.Equal(t, 2, n)
		assert.Equal(t, []byte{'a', 'b', 0, 0, 0}, field)
	})

	t.Run("truncates to field width", func(t *testing.T) {
		// Prepare
		field := make([]byte, 3)

		// Execute
		n := PutCString(field, "abcdef")

		// Check
		assert.Equal(t, 3, n)
		assert.Equal(t, "abc", CString(field))
	})
}
