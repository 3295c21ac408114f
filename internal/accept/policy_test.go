package accept

import "testing"

func TestLongestRun(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"abcd", 4},
		{"ij", 2},
		{"1234", 0},
		{"...,;!", 0},
		{"", 0},
		{"ab_cd", 5},       // underscore joins runs
		{"ab1cd2efg", 3},   // digits break runs
		{"_", 1},
		{"x1yy2zzz", 3},
		{"hello world", 5}, // space breaks the run
		{"end_with_letters", 16},
		{"9abc", 3},        // trailing run counted after the scan
	}
	for _, tc := range cases {
		if got := LongestRun(tc.in); got != tc.want {
			t.Fatalf("LongestRun(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPolicyAccept(t *testing.T) {
	cases := []struct {
		name   string
		minRun int
		in     string
		want   bool
	}{
		{"at threshold", 4, "abcd", true},
		{"below threshold", 4, "ij", false},
		{"underscore counts", 5, "ab_cd", true},
		{"letters only just short", 5, "wxyz", false},
		{"digits rejected by default", 4, "1234", false},
		{"zero minimum accepts score zero", 0, "1234", true},
		{"zero minimum accepts text", 0, "abcd", true},
		{"negative minimum accepts anything", -1, "$%&/", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Policy{MinRun: tc.minRun}
			if got := p.Accept(tc.in); got != tc.want {
				t.Fatalf("Policy{%d}.Accept(%q) = %v, want %v", tc.minRun, tc.in, got, tc.want)
			}
		})
	}
}

// Raising the threshold must never accept a string a lower threshold rejected.
func TestAcceptMonotonicInMinRun(t *testing.T) {
	corpus := []string{"abcd", "ij", "1234", "ab_cd", "x1yy2zzz", "", "hello world", "_"}
	for _, s := range corpus {
		prev := true
		for min := 0; min <= 8; min++ {
			cur := Policy{MinRun: min}.Accept(s)
			if cur && !prev {
				t.Fatalf("accept(%q) flipped back on at min=%d", s, min)
			}
			prev = cur
		}
	}
}
