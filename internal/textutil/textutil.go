// Package textutil holds the small text and filesystem helpers the CLI
// entry point leans on.
package textutil

import (
	"os"
	"strings"
)

// whitespace is the cutset Trim strips from both ends.
const whitespace = " \t\n\r"

// Trim removes leading and trailing whitespace (space, tab, newline,
// carriage return). An all-whitespace or empty input yields "".
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}

// Split partitions s on every occurrence of delim, preserving order and
// empty segments. The result has one more element than s has delimiter
// occurrences; an input without the delimiter comes back as a
// single-element slice.
func Split(s string, delim rune) []string {
	return strings.Split(s, string(delim))
}

// FileExists reports whether path can currently be opened for reading.
// Missing file, permission denied and invalid path all collapse to
// false — callers only care whether the entry is usable.
func FileExists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
