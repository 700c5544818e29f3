package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"campushub_backend/internals/features/academics/model"
)

// BatchExportHeader is the fixed column order consumed by the admin
// office's spreadsheet templates. Do not reorder.
var BatchExportHeader = []string{"Serial No.", "Department Name", "Batch Name", "Created At", "Active"}

// WriteBatchCSV renders batches (with preloaded departments) as CSV.
// Serial numbers are 1-based in the given order.
func WriteBatchCSV(w io.Writer, batches []model.BatchModel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BatchExportHeader); err != nil {
		return err
	}
	for i, b := range batches {
		dept := ""
		if b.Department != nil {
			dept = b.Department.Name
		}
		active := "No"
		if b.Status {
			active = "Yes"
		}
		row := []string{
			strconv.Itoa(i + 1),
			dept,
			b.Name,
			b.CreatedAt.Format("2006-01-02 15:04:05"),
			active,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
