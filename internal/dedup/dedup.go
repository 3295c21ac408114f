// Package dedup emits accepted candidates exactly once each, preserving
// the order of their first occurrence in the scan.
package dedup

// Unique streams candidates through accept and suppresses repeats. The
// seen map is populated on first emission; rejected candidates mark
// nothing, so every occurrence is run through the predicate.
func Unique(candidates []string, accept func(string) bool) []string {
	emitted := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !accept(c) {
			continue
		}
		if _, ok := emitted[c]; ok {
			continue
		}
		emitted[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
