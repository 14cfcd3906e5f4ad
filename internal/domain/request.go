package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type BookingType string

const (
	BookingIndividual BookingType = "individual"
	BookingTeam       BookingType = "team"
)

// MaxStayDays caps the inclusive day span of a request.
const MaxStayDays = 14

type Request struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id" validate:"required"`
	CityID      int64         `json:"city_id" validate:"required"`
	BookingType BookingType   `json:"booking_type"`
	DateFrom    time.Time     `json:"date_from" validate:"required"`
	DateTo      time.Time     `json:"date_to" validate:"required"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Remarks     string        `json:"remarks,omitempty" gorm:"type:text"`
	Status      RequestStatus `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
	ProcessedAt *time.Time    `json:"processed_at,omitempty"`
}

// TeamMember is an extra participant on a team request. The email is a
// free-form key and need not resolve to a users row.
type TeamMember struct {
	ID        int64  `json:"id"`
	RequestID int64  `json:"request_id" gorm:"uniqueIndex:idx_team_member"`
	Email     string `json:"email" validate:"required,email" gorm:"uniqueIndex:idx_team_member"`
}

// AssignedAccommodation maps one person on an approved request to a
// location in the hierarchy. Nil level ids mean "not assigned at that
// granularity" (a whole flat vs a specific bed).
type AssignedAccommodation struct {
	ID          int64  `json:"id"`
	RequestID   int64  `json:"request_id"`
	UserEmail   string `json:"user_email"`
	CityID      int64  `json:"city_id"`
	ApartmentID *int64 `json:"apartment_id,omitempty"`
	FlatID      *int64 `json:"flat_id,omitempty"`
	RoomID      *int64 `json:"room_id,omitempty"`
	BedID       *int64 `json:"bed_id,omitempty"`
}
