package utils

// CString - Returns the contents of a fixed width, NUL padded field up to the first NUL byte.
// A field without terminator is returned in full.
func CString(field []byte) string {
	for i, b := range field {
		if b == 0 {
			return string(field[:i])
		}
	}

	return string(field)
}

// PutCString - Copies s into a fixed width field and pads the remainder with NUL bytes.
// Bytes of s not fitting in the field are dropped.
//
// It returns:
//   - n is the number of bytes of s that were written
func PutCString(field []byte, s string) (n int) {
	n = copy(field, s)
	for i := n; i < len(field); i++ {
		field[i] = 0
	}

	return
}
