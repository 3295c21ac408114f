// Package scan splits a raw byte buffer into candidate strings: maximal
// runs of printable 7-bit ASCII delimited by separator bytes.
package scan

// Printable ASCII range accepted into candidates.
const (
	minPrintable = 32
	maxPrintable = 126
)

// IsSeparator reports whether b terminates a candidate run. NUL, newline
// and carriage return are named explicitly even though they already fall
// outside the printable range; every byte >= 128 and every other control
// code, tab included, separates as well.
func IsSeparator(b byte) bool {
	if b == 0 || b == '\n' || b == '\r' {
		return true
	}
	return b < minPrintable || b > maxPrintable
}

// Candidates scans buf once and returns the maximal printable runs in the
// order they appear. Runs are never empty and never span a separator; an
// empty or all-separator buffer yields a nil slice.
func Candidates(buf []byte) []string {
	var out []string
	start := -1 // start index of the open run, -1 when between runs
	for i, b := range buf {
		if IsSeparator(b) {
			if start >= 0 {
				out = append(out, string(buf[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, string(buf[start:]))
	}
	return out
}
