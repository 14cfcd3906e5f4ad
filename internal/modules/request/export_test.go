package request

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"staybook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSVSkipsUnassignedRows(t *testing.T) {
	alice := "alice@corp.example"
	bob := "bob@corp.example"
	processed := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	rows := []repository.HistoryRow{
		{
			ID:          1,
			DateFrom:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			DateTo:      time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
			Status:      "approved",
			Remarks:     strPtr("offsite"),
			BookingType: "team",
			ProcessedAt: &processed,
			UserName:    "Alice Meyer",
			UserEmail:   alice,
			UserRole:    "employee",
			CityName:    "Berlin",
			ApartmentName: strPtr("Tower A"),
			FlatName:      strPtr("Flat 3"),
			AssignedEmail: &alice,
		},
		{
			ID:          1,
			DateFrom:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			DateTo:      time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
			Status:      "approved",
			BookingType: "team",
			UserName:    "Alice Meyer",
			UserEmail:   alice,
			UserRole:    "employee",
			CityName:    "Berlin",
			ApartmentName: strPtr("Tower A"),
			AssignedEmail: &bob,
		},
		{
			ID:          2,
			DateFrom:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			DateTo:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:      "pending",
			BookingType: "individual",
			UserName:    "Bob Tanaka",
			UserEmail:   bob,
			CityName:    "Munich",
			// no assignment: pending rows never export
		},
	}
	team := map[int64][]string{1: {bob}}

	data, err := renderCSV(rows, team)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one record per assigned email")

	assert.Equal(t, exportHeader, records[0])

	assert.Equal(t, []string{
		"Alice Meyer", alice, "employee", "Berlin",
		"Tower A > Flat 3", "team", bob,
		"2026-03-02", "2026-03-06", "approved", "offsite",
		"2026-03-01T14:00:00Z",
	}, records[1])

	// team-member record: assigned email, row-local accommodation
	assert.Equal(t, bob, records[2][1])
	assert.Equal(t, "Tower A", records[2][4])
	assert.Equal(t, "", records[2][11], "unprocessed rows leave Processed At empty")
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&mockStore{}, now)

	filename, data, err := svc.Export(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "booking_history_1772366400000.csv", filename)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "empty history still exports the header")
	assert.Equal(t, exportHeader, records[0])
}
