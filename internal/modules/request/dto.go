package request

import "time"

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RequestView is the aggregated, nested shape of one request.
type RequestView struct {
	ID                     int64             `json:"id"`
	Timestamp              time.Time         `json:"timestamp"`
	User                   UserView          `json:"user"`
	City                   string            `json:"city"`
	Dates                  DateRange         `json:"dates"`
	Status                 string            `json:"status"`
	AssignedAccommodations map[string]string `json:"assignedAccommodations"`
	BookingType            string            `json:"bookingType"`
	TeamMembers            []string          `json:"teamMembers"`
	Remarks                string            `json:"remarks"`
	ProcessedAt            *time.Time        `json:"processedAt"`
}

// ListQuery is the optional filter set accepted by the listing and
// export endpoints.
type ListQuery struct {
	City     string `form:"city" json:"city"`
	Status   string `form:"status" json:"status"`
	Role     string `form:"role" json:"role"`
	Search   string `form:"search" json:"search"`
	DateFrom string `form:"dateFrom" json:"dateFrom"`
	DateTo   string `form:"dateTo" json:"dateTo"`
}

type ExportBody struct {
	Filters ListQuery `json:"filters"`
}

// DecisionBody carries the approval (or rejection) payload. Location
// ids are optional; an omitted level stays unassigned. cottage_id is
// echoed back but never stored.
type DecisionBody struct {
	ApartmentID *int64 `json:"apartment_id"`
	FlatID      *int64 `json:"flat_id"`
	RoomID      *int64 `json:"room_id"`
	CottageID   *int64 `json:"cottage_id"`
	Remarks     string `json:"remarks"`
}
