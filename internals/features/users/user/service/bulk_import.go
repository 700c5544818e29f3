package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bulk student upload. Accepted columns: name,email,phone,enrollmentFeePaid.
// Each bad line becomes an entry in errors ("Line N: ..."); good lines are
// returned as rows. Line numbers are 1-based including the header line.

type BulkRow struct {
	Line              int
	Name              string
	Email             string
	Phone             string
	EnrollmentFeePaid bool
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func parseRecord(line int, rec []string) (*BulkRow, string) {
	for len(rec) < 4 {
		rec = append(rec, "")
	}
	name := strings.TrimSpace(rec[0])
	email := strings.ToLower(strings.TrimSpace(rec[1]))
	phone := strings.TrimSpace(rec[2])
	feePaid := strings.EqualFold(strings.TrimSpace(rec[3]), "true") ||
		strings.TrimSpace(rec[3]) == "1" ||
		strings.EqualFold(strings.TrimSpace(rec[3]), "yes")

	if name == "" || email == "" {
		return nil, fmt.Sprintf("Line %d: Missing required fields", line)
	}
	if !emailRe.MatchString(email) {
		return nil, fmt.Sprintf("Line %d: Invalid email", line)
	}
	return &BulkRow{Line: line, Name: name, Email: email, Phone: phone, EnrollmentFeePaid: feePaid}, ""
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name")
}

// ParseStudentCSV reads the CSV stream and splits it into rows and errors.
func ParseStudentCSV(r io.Reader) ([]BulkRow, []string) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []BulkRow
	var errs []string
	line := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			errs = append(errs, fmt.Sprintf("Line %d: Unreadable row", line))
			continue
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		row, msg := parseRecord(line, rec)
		if msg != "" {
			errs = append(errs, msg)
			continue
		}
		rows = append(rows, *row)
	}
	return rows, errs
}

// ParseStudentXLSX reads the first sheet of an XLSX upload.
func ParseStudentXLSX(r io.Reader) ([]BulkRow, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}

	var rows []BulkRow
	var errs []string
	for i, rec := range records {
		line := i + 1
		if line == 1 && isHeader(rec) {
			continue
		}
		row, msg := parseRecord(line, rec)
		if msg != "" {
			errs = append(errs, msg)
			continue
		}
		rows = append(rows, *row)
	}
	return rows, errs, nil
}
