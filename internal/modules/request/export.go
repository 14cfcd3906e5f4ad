package request

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	"staybook/internal/repository"
)

var exportHeader = []string{
	"User Name",
	"User Email",
	"Role",
	"City",
	"Accommodation",
	"Booking Type",
	"Team Members",
	"Start Date",
	"End Date",
	"Status",
	"Remarks",
	"Processed At",
}

// renderCSV flattens history rows into one CSV record per assigned
// email. Rows without an assignment (still pending, or rejected with
// none) are skipped.
func renderCSV(rows []repository.HistoryRow, team map[int64][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.AssignedEmail == nil {
			continue
		}

		var remarks string
		if row.Remarks != nil {
			remarks = *row.Remarks
		}
		var processedAt string
		if row.ProcessedAt != nil {
			processedAt = row.ProcessedAt.UTC().Format(time.RFC3339)
		}

		record := []string{
			row.UserName,
			*row.AssignedEmail,
			row.UserRole,
			row.CityName,
			FormatLocation(row.ApartmentName, row.FlatName, row.RoomName, row.BedName),
			row.BookingType,
			strings.Join(team[row.ID], ", "),
			row.DateFrom.Format("2006-01-02"),
			row.DateTo.Format("2006-01-02"),
			row.Status,
			remarks,
			processedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
