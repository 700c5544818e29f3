package service

import (
	"strings"
	"testing"
)

func TestParseStudentCSV(t *testing.T) {
	tests := []struct {
		name      string
		csv       string
		wantRows  int
		wantErrs  []string
		wantEmail string
	}{
		{
			name:     "valid rows with header",
			csv:      "name,email,phone,enrollmentFeePaid\nAsha Rao,asha@example.com,9000000001,true\nRavi Kumar,ravi@example.com,9000000002,false\n",
			wantRows: 2, wantEmail: "asha@example.com",
		},
		{
			name:     "malformed email",
			csv:      "name,email,phone,enrollmentFeePaid\nAsha Rao,not-an-email,9000000001,true\n",
			wantRows: 0,
			wantErrs: []string{"Line 2: Invalid email"},
		},
		{
			name:     "empty email counts as missing fields",
			csv:      "name,email,phone,enrollmentFeePaid\nAsha Rao,,9000000001,true\n",
			wantRows: 0,
			wantErrs: []string{"Line 2: Missing required fields"},
		},
		{
			name:     "missing name",
			csv:      "name,email,phone,enrollmentFeePaid\n,asha@example.com,9000000001,1\n",
			wantRows: 0,
			wantErrs: []string{"Line 2: Missing required fields"},
		},
		{
			name:     "no header first row still parsed",
			csv:      "Asha Rao,asha@example.com,9000000001,yes\n",
			wantRows: 1, wantEmail: "asha@example.com",
		},
		{
			name:     "mixed good and bad lines",
			csv:      "name,email,phone,enrollmentFeePaid\nAsha Rao,asha@example.com,9000000001,true\nBroken,bad-email,,\n",
			wantRows: 1,
			wantErrs: []string{"Line 3: Invalid email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, errs := ParseStudentCSV(strings.NewReader(tt.csv))
			if len(rows) != tt.wantRows {
				t.Fatalf("rows = %d, want %d (errs=%v)", len(rows), tt.wantRows, errs)
			}
			if len(errs) != len(tt.wantErrs) {
				t.Fatalf("errs = %v, want %v", errs, tt.wantErrs)
			}
			for i, want := range tt.wantErrs {
				if errs[i] != want {
					t.Errorf("errs[%d] = %q, want %q", i, errs[i], want)
				}
			}
			if tt.wantEmail != "" && rows[0].Email != tt.wantEmail {
				t.Errorf("rows[0].Email = %q, want %q", rows[0].Email, tt.wantEmail)
			}
		})
	}
}

func TestParseStudentCSVFeeFlag(t *testing.T) {
	rows, errs := ParseStudentCSV(strings.NewReader("A,a@b.co,1,true\nB,b@b.co,2,0\n"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errs: %v", errs)
	}
	if !rows[0].EnrollmentFeePaid {
		t.Error("row 1: enrollmentFeePaid should be true")
	}
	if rows[1].EnrollmentFeePaid {
		t.Error("row 2: enrollmentFeePaid should be false")
	}
}
