package controller

import "testing"

func TestCompletionPercent(t *testing.T) {
	cases := []struct {
		name  string
		done  int
		total int64
		want  float64
	}{
		{"nothing done", 0, 8, 0},
		{"halfway", 4, 8, 50},
		{"all done", 8, 8, 100},
		{"no content", 3, 0, 0},
		// stale completed ids (content shrank after completion) must not
		// push the figure past full
		{"more done than exists", 10, 8, 100},
	}
	for _, tc := range cases {
		if got := completionPercent(tc.done, tc.total); got != tc.want {
			t.Errorf("%s: completionPercent(%d, %d) = %v, want %v", tc.name, tc.done, tc.total, got, tc.want)
		}
	}
}
