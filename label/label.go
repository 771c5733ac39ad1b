// Package label turns node ids into the human-readable letters shown to users.
//
// Ids map to spreadsheet-style column names (bijective base-26):
//
//	0 → A, 1 → B, …, 25 → Z, 26 → AA, 27 → AB, …, 701 → ZZ, 702 → AAA
//
// so every non-negative id gets a distinct label instead of running past 'Z'.
package label

import "strings"

// PathSeparator joins consecutive labels in a rendered path.
const PathSeparator = " -> "

// unknown is returned for negative ids.
const unknown = "?"

// Of returns the label of id, or "?" for a negative id.
func Of[T ~int](id T) string {
	n := int(id)
	if n < 0 {
		return unknown
	}

	// at most 14 letters for a 64-bit int
	var buf [16]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('A' + n%26)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}

	return string(buf[i:])
}

// Path renders ids as labels joined by " -> ", e.g. "A -> D -> C -> B".
// An empty path renders as the empty string.
func Path[T ~int](path []T) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = Of(id)
	}

	return strings.Join(parts, PathSeparator)
}
