package crt

import "fmt"

// LastWriteWins - Collision Resolution Technique where an insert simply overwrites whatever entry occupies the bucket.
// A lookup for an id that lost its bucket to a colliding id reports no record found.
const LastWriteWins int = 0

// SeparateChaining - Collision Resolution Technique where colliding entries are linked from the bucket into an
// overflow area through the collision link of each index entry.
const SeparateChaining int = 1

// LinearProbing - Collision Resolution Technique where an entry that finds its bucket taken is stored in the next
// free bucket, probing one bucket at a time and wrapping around at the end of the table.
const LinearProbing int = 2

// Valid - Returns true if technique is one of the collision resolution techniques above
func Valid(technique int) bool {
	return technique == LastWriteWins || technique == SeparateChaining || technique == LinearProbing
}

// Name - Returns a readable name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case LastWriteWins:
		return "LastWriteWins"
	case SeparateChaining:
		return "SeparateChaining"
	case LinearProbing:
		return "LinearProbing"
	default:
		return fmt.Sprintf("Unknown(%d)", technique)
	}
}

// Parse - Returns the collision resolution technique given its name as returned by Name
func Parse(name string) (technique int, err error) {
	switch name {
	case "LastWriteWins":
		technique = LastWriteWins
	case "SeparateChaining":
		technique = SeparateChaining
	case "LinearProbing":
		technique = LinearProbing
	default:
		err = fmt.Errorf("unknown collision resolution technique: %s", name)
	}

	return
}
