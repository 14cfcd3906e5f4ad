package domain

// Containment hierarchy: City > Apartment > Flat > Room > Bed.

type Apartment struct {
	ID            int64  `json:"id"`
	Name          string `json:"name" validate:"required"`
	CityID        int64  `json:"city_id" validate:"required"`
	GoogleMapLink string `json:"google_map_link,omitempty"`
}

type Flat struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	ApartmentID int64  `json:"apartment_id" validate:"required"`
}

type Room struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"required"`
	FlatID int64  `json:"flat_id" validate:"required"`
	Beds   int    `json:"beds"`
}

type Bed struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"required"`
	RoomID    int64  `json:"room_id" validate:"required"`
	IsBooked  bool   `json:"is_booked"`
	BlockedBy *int64 `json:"blocked_by,omitempty"`
}
