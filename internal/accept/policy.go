// Package accept decides which candidate strings are worth emitting, based
// on the longest contiguous sequence of letters they contain. Purely
// numeric or punctuation-heavy fragments score zero and are filtered out
// under any positive threshold.
package accept

// DefaultMinRun is the threshold applied when the user gives none,
// matching the classic strings noise cutoff.
const DefaultMinRun = 4

// Policy filters candidates by the length of their longest contiguous run
// of letter or underscore characters.
type Policy struct {
	// MinRun is the required longest-run length. Zero accepts every
	// candidate (a run-free candidate scores 0, and 0 >= 0 holds);
	// negative values accept unconditionally.
	MinRun int
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// LongestRun returns the length of the longest contiguous sequence of
// letters and underscores in s, or 0 when s contains none.
func LongestRun(s string) int {
	longest, current := 0, 0
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && s[i] != '_' {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}

// Accept reports whether s qualifies for output under the policy.
func (p Policy) Accept(s string) bool {
	return LongestRun(s) >= p.MinRun
}
