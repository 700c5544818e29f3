package service

import (
	"testing"
	"time"
)

func TestFormatRegistrationNo(t *testing.T) {
	cases := []struct {
		year int
		seq  int
		want string
	}{
		{2026, 1, "MU/26/00001"},
		{2026, 42, "MU/26/00042"},
		{2030, 12345, "MU/30/12345"},
		{2005, 7, "MU/05/00007"},
	}
	for _, tc := range cases {
		if got := FormatRegistrationNo(tc.year, tc.seq); got != tc.want {
			t.Errorf("FormatRegistrationNo(%d, %d) = %q, want %q", tc.year, tc.seq, got, tc.want)
		}
	}
}

func TestFormatRollNo(t *testing.T) {
	cases := []struct {
		year int
		seq  int
		want string
	}{
		{2026, 1, "2600001"},
		{2026, 42, "2600042"},
		{2030, 12345, "3012345"},
	}
	for _, tc := range cases {
		if got := FormatRollNo(tc.year, tc.seq); got != tc.want {
			t.Errorf("FormatRollNo(%d, %d) = %q, want %q", tc.year, tc.seq, got, tc.want)
		}
	}
}

func TestAdmissionYear(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	if got := AdmissionYear(now); got != 2026 {
		t.Errorf("AdmissionYear = %d, want 2026", got)
	}
}
