package request

import (
	"strings"

	"staybook/internal/repository"
)

const locationSeparator = " > "

// FormatLocation joins the non-null levels of an assignment into a
// containment path, outermost first: "Tower A > Flat 3 > Room 12".
// All-null input yields the empty string.
func FormatLocation(apartment, flat, room, bed *string) string {
	parts := make([]string, 0, 4)
	for _, p := range []*string{apartment, flat, room, bed} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, locationSeparator)
}

// Aggregate folds denormalized history rows into one view per request
// id, preserving first-seen id order. It is a pure function of the row
// sequence: same input, same output, no store access.
//
// Assignment rows merge into the view's assignment map keyed by email.
// If one email carries two assignment rows within a group, the
// later-encountered row wins; source data should not produce this, but
// the overwrite is deliberate rather than accidental.
func Aggregate(rows []repository.HistoryRow) []RequestView {
	views := make([]RequestView, 0, len(rows))
	index := make(map[int64]int, len(rows))
	seenMember := make(map[int64]map[string]bool, len(rows))

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(views)
			index[row.ID] = i
			seenMember[row.ID] = make(map[string]bool)

			var remarks string
			if row.Remarks != nil {
				remarks = *row.Remarks
			}

			views = append(views, RequestView{
				ID:        row.ID,
				Timestamp: row.Timestamp,
				User: UserView{
					ID:    row.UserID,
					Name:  row.UserName,
					Email: row.UserEmail,
					Role:  row.UserRole,
				},
				City: row.CityName,
				Dates: DateRange{
					From: row.DateFrom.Format("2006-01-02"),
					To:   row.DateTo.Format("2006-01-02"),
				},
				Status:                 row.Status,
				AssignedAccommodations: make(map[string]string),
				BookingType:            row.BookingType,
				TeamMembers:            []string{},
				Remarks:                remarks,
				ProcessedAt:            row.ProcessedAt,
			})
		}

		if row.AssignedEmail == nil {
			continue
		}
		email := *row.AssignedEmail

		views[i].AssignedAccommodations[email] = FormatLocation(
			row.ApartmentName, row.FlatName, row.RoomName, row.BedName,
		)

		if email != row.UserEmail && !seenMember[row.ID][email] {
			seenMember[row.ID][email] = true
			views[i].TeamMembers = append(views[i].TeamMembers, email)
		}
	}

	return views
}
