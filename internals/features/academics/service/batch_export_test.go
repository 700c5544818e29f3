package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"campushub_backend/internals/features/academics/model"
)

func TestWriteBatchCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBatchCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(buf.String())
	want := "Serial No.,Department Name,Batch Name,Created At,Active"
	if got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestWriteBatchCSVRows(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	batches := []model.BatchModel{
		{
			Name:       "2026-A",
			Status:     true,
			CreatedAt:  created,
			Department: &model.DepartmentModel{Name: "Physics"},
		},
		{
			Name:      "2026-B",
			Status:    false,
			CreatedAt: created,
		},
	}

	var buf bytes.Buffer
	if err := WriteBatchCSV(&buf, batches); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "1,Physics,2026-A,2026-03-14 09:30:00,Yes" {
		t.Errorf("row 1 = %q", lines[1])
	}
	// Missing department renders as empty, inactive as No.
	if lines[2] != "2,,2026-B,2026-03-14 09:30:00,No" {
		t.Errorf("row 2 = %q", lines[2])
	}
}
